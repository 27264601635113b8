package adminclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/devportfolio/portfolio-api/internal/models"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
)

func resourcePath(base, id string, action ...string) string {
	p := base + "/" + url.PathEscape(id)
	for _, a := range action {
		p += "/" + a
	}
	return p
}

func (s *Session) Profile(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	if _, err := s.Do(ctx, http.MethodGet, "/admin/profile", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Verify checks the token against the server and returns its admin
func (s *Session) Verify(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	if _, err := s.Do(ctx, http.MethodGet, "/admin/verify", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *Session) Statistics(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	if _, err := s.Do(ctx, http.MethodGet, "/admin/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ProjectQuery filters the admin project listing; zero values are omitted
type ProjectQuery struct {
	Category string
	Featured *bool
	Page     int
	Limit    int
}

func (q ProjectQuery) encode() string {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Featured != nil {
		v.Set("featured", strconv.FormatBool(*q.Featured))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ListProjects returns one page of projects and the total number of matches
func (s *Session) ListProjects(ctx context.Context, q ProjectQuery) ([]*models.Project, int, error) {
	var projects []*models.Project
	resp, err := s.Do(ctx, http.MethodGet, "/admin/projects"+q.encode(), nil, &projects)
	if err != nil {
		return nil, 0, err
	}
	total := resp.Total()
	if total < 0 {
		total = len(projects)
	}
	return projects, total, nil
}

func (s *Session) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if _, err := s.Do(ctx, http.MethodGet, resourcePath("/admin/projects", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Session) CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	var project models.Project
	if _, err := s.Do(ctx, http.MethodPost, "/admin/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Session) UpdateProject(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if _, err := s.Do(ctx, http.MethodPut, resourcePath("/admin/projects", id), req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Session) DeleteProject(ctx context.Context, id string) error {
	_, err := s.Do(ctx, http.MethodDelete, resourcePath("/admin/projects", id), nil, nil)
	return err
}

func (s *Session) ToggleProjectFeatured(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if _, err := s.Do(ctx, http.MethodPatch, resourcePath("/admin/projects", id, "toggle-featured"), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Session) ProjectStats(ctx context.Context) (*models.ProjectStats, error) {
	var stats models.ProjectStats
	if _, err := s.Do(ctx, http.MethodGet, "/admin/projects/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Session) ListSkills(ctx context.Context) ([]*models.Skill, error) {
	var skills []*models.Skill
	if _, err := s.Do(ctx, http.MethodGet, "/admin/skills", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (s *Session) CreateSkill(ctx context.Context, req *models.CreateSkillRequest) (*models.Skill, error) {
	var skill models.Skill
	if _, err := s.Do(ctx, http.MethodPost, "/admin/skills", req, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *Session) UpdateSkill(ctx context.Context, id string, req *models.UpdateSkillRequest) (*models.Skill, error) {
	var skill models.Skill
	if _, err := s.Do(ctx, http.MethodPut, resourcePath("/admin/skills", id), req, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *Session) DeleteSkill(ctx context.Context, id string) error {
	_, err := s.Do(ctx, http.MethodDelete, resourcePath("/admin/skills", id), nil, nil)
	return err
}

func (s *Session) ToggleSkillActive(ctx context.Context, id string) (*models.Skill, error) {
	var skill models.Skill
	if _, err := s.Do(ctx, http.MethodPatch, resourcePath("/admin/skills", id, "toggle-active"), nil, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// SkillIcons returns the icon catalog accepted by skill writes
func (s *Session) SkillIcons(ctx context.Context) ([]models.IconCatalogEntry, error) {
	var icons []models.IconCatalogEntry
	if _, err := s.Do(ctx, http.MethodGet, "/admin/skills/icons", nil, &icons); err != nil {
		return nil, err
	}
	return icons, nil
}

// JourneyInput is a milestone as typed by the operator. Year arrives as text
// and is converted before anything is sent.
type JourneyInput struct {
	Year         string
	Title        string
	Description  string
	DisplayOrder int
}

func parseYear(raw string) (int, error) {
	year, err := models.ParseYear(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("year", "Year must be a number between 1900 and 2200")
	}
	return year, nil
}

func (in JourneyInput) createRequest() (*models.CreateJourneyRequest, error) {
	year, err := parseYear(in.Year)
	if err != nil {
		return nil, err
	}
	return &models.CreateJourneyRequest{
		Year:         year,
		Title:        in.Title,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
	}, nil
}

// updateRequest sends only the text fields that were filled in
func (in JourneyInput) updateRequest() (*models.UpdateJourneyRequest, error) {
	req := &models.UpdateJourneyRequest{DisplayOrder: &in.DisplayOrder}
	if in.Year != "" {
		year, err := parseYear(in.Year)
		if err != nil {
			return nil, err
		}
		req.Year = &year
	}
	if in.Title != "" {
		req.Title = &in.Title
	}
	if in.Description != "" {
		req.Description = &in.Description
	}
	return req, nil
}

func (s *Session) ListJourney(ctx context.Context) ([]*models.JourneyMilestone, error) {
	var milestones []*models.JourneyMilestone
	if _, err := s.Do(ctx, http.MethodGet, "/admin/journey", nil, &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

func (s *Session) CreateJourney(ctx context.Context, in JourneyInput) (*models.JourneyMilestone, error) {
	req, err := in.createRequest()
	if err != nil {
		return nil, err
	}
	var milestone models.JourneyMilestone
	if _, err := s.Do(ctx, http.MethodPost, "/admin/journey", req, &milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (s *Session) UpdateJourney(ctx context.Context, id string, in JourneyInput) (*models.JourneyMilestone, error) {
	req, err := in.updateRequest()
	if err != nil {
		return nil, err
	}
	var milestone models.JourneyMilestone
	if _, err := s.Do(ctx, http.MethodPut, resourcePath("/admin/journey", id), req, &milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (s *Session) DeleteJourney(ctx context.Context, id string) error {
	_, err := s.Do(ctx, http.MethodDelete, resourcePath("/admin/journey", id), nil, nil)
	return err
}

func (s *Session) ListHighlights(ctx context.Context) ([]*models.PortfolioHighlight, error) {
	var highlights []*models.PortfolioHighlight
	if _, err := s.Do(ctx, http.MethodGet, "/admin/highlights", nil, &highlights); err != nil {
		return nil, err
	}
	return highlights, nil
}

func (s *Session) CreateHighlight(ctx context.Context, req *models.CreateHighlightRequest) (*models.PortfolioHighlight, error) {
	var highlight models.PortfolioHighlight
	if _, err := s.Do(ctx, http.MethodPost, "/admin/highlights", req, &highlight); err != nil {
		return nil, err
	}
	return &highlight, nil
}

func (s *Session) UpdateHighlight(ctx context.Context, id string, req *models.UpdateHighlightRequest) (*models.PortfolioHighlight, error) {
	var highlight models.PortfolioHighlight
	if _, err := s.Do(ctx, http.MethodPut, resourcePath("/admin/highlights", id), req, &highlight); err != nil {
		return nil, err
	}
	return &highlight, nil
}

func (s *Session) DeleteHighlight(ctx context.Context, id string) error {
	_, err := s.Do(ctx, http.MethodDelete, resourcePath("/admin/highlights", id), nil, nil)
	return err
}

func (s *Session) ToggleHighlightActive(ctx context.Context, id string) (*models.PortfolioHighlight, error) {
	return s.toggleHighlight(ctx, id, "toggle-active")
}

func (s *Session) ToggleHighlightFeatured(ctx context.Context, id string) (*models.PortfolioHighlight, error) {
	return s.toggleHighlight(ctx, id, "toggle-featured")
}

func (s *Session) toggleHighlight(ctx context.Context, id, action string) (*models.PortfolioHighlight, error) {
	var highlight models.PortfolioHighlight
	if _, err := s.Do(ctx, http.MethodPatch, resourcePath("/admin/highlights", id, action), nil, &highlight); err != nil {
		return nil, err
	}
	return &highlight, nil
}

// ResumeUpload is a PDF plus the metadata stored with it. Empty fields are not sent.
type ResumeUpload struct {
	FileName    string
	Content     io.Reader
	Title       string
	Version     string
	Description string
	Tags        string
	IsPublic    *bool
}

func (u ResumeUpload) upload() *Upload {
	fields := map[string]string{}
	for name, value := range map[string]string{
		"title":       u.Title,
		"version":     u.Version,
		"description": u.Description,
		"tags":        u.Tags,
	} {
		if value != "" {
			fields[name] = value
		}
	}
	if u.IsPublic != nil {
		fields["isPublic"] = strconv.FormatBool(*u.IsPublic)
	}
	return &Upload{
		Field:       "resume",
		FileName:    u.FileName,
		ContentType: "application/pdf",
		Content:     u.Content,
		Fields:      fields,
	}
}

func (s *Session) ListResumes(ctx context.Context) ([]*models.Resume, error) {
	var resumes []*models.Resume
	if _, err := s.Do(ctx, http.MethodGet, "/admin/resume", nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

func (s *Session) GetResume(ctx context.Context, id string) (*models.Resume, error) {
	var resume models.Resume
	if _, err := s.Do(ctx, http.MethodGet, resourcePath("/admin/resume", id), nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (s *Session) UploadResume(ctx context.Context, u ResumeUpload) (*models.Resume, error) {
	var resume models.Resume
	if _, err := s.Do(ctx, http.MethodPost, "/admin/resume", u.upload(), &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (s *Session) UpdateResume(ctx context.Context, id string, req *models.UpdateResumeRequest) (*models.Resume, error) {
	var resume models.Resume
	if _, err := s.Do(ctx, http.MethodPut, resourcePath("/admin/resume", id), req, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (s *Session) DeleteResume(ctx context.Context, id string) error {
	_, err := s.Do(ctx, http.MethodDelete, resourcePath("/admin/resume", id), nil, nil)
	return err
}

// ToggleResumeActive makes the resume the active one, or deactivates it
func (s *Session) ToggleResumeActive(ctx context.Context, id string) (*models.Resume, error) {
	var resume models.Resume
	if _, err := s.Do(ctx, http.MethodPatch, resourcePath("/admin/resume", id, "toggle-active"), nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (s *Session) ToggleResumePublic(ctx context.Context, id string) (*models.Resume, error) {
	var resume models.Resume
	if _, err := s.Do(ctx, http.MethodPatch, resourcePath("/admin/resume", id, "toggle-public"), nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// ListMessages returns the inbox, optionally only read or unread messages
func (s *Session) ListMessages(ctx context.Context, read *bool) ([]*models.ContactMessage, error) {
	endpoint := "/admin/messages"
	if read != nil {
		endpoint += "?read=" + strconv.FormatBool(*read)
	}
	var messages []*models.ContactMessage
	if _, err := s.Do(ctx, http.MethodGet, endpoint, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Session) MarkMessageRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if _, err := s.Do(ctx, http.MethodPatch, resourcePath("/admin/messages", id, "read"), nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Session) ToggleMessageRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if _, err := s.Do(ctx, http.MethodPatch, resourcePath("/admin/messages", id, "toggle-read"), nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Session) DeleteMessage(ctx context.Context, id string) error {
	_, err := s.Do(ctx, http.MethodDelete, resourcePath("/admin/messages", id), nil, nil)
	return err
}

func (s *Session) UploadImage(ctx context.Context, fileName string, content io.Reader) (*models.UploadedImage, error) {
	var image models.UploadedImage
	upload := &Upload{Field: "image", FileName: fileName, Content: content}
	if _, err := s.Do(ctx, http.MethodPost, "/upload/images", upload, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *Session) DeleteImage(ctx context.Context, imageURL string) error {
	_, err := s.Do(ctx, http.MethodDelete, "/upload/images", models.DeleteImageRequest{ImageURL: imageURL}, nil)
	return err
}
