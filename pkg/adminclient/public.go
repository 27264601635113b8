package adminclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/devportfolio/portfolio-api/internal/models"
)

// PublicProjects lists what visitors see, optionally filtered
func (s *Session) PublicProjects(ctx context.Context, category string, featured *bool) ([]*models.Project, error) {
	v := url.Values{}
	if category != "" {
		v.Set("category", category)
	}
	if featured != nil {
		v.Set("featured", strconv.FormatBool(*featured))
	}
	endpoint := "/projects"
	if len(v) > 0 {
		endpoint += "?" + v.Encode()
	}

	var projects []*models.Project
	if _, err := s.public(ctx, http.MethodGet, endpoint, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Session) PublicProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if _, err := s.public(ctx, http.MethodGet, resourcePath("/projects", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Session) PublicSkills(ctx context.Context) ([]*models.Skill, error) {
	var skills []*models.Skill
	if _, err := s.public(ctx, http.MethodGet, "/skills", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (s *Session) PublicJourney(ctx context.Context) ([]*models.JourneyMilestone, error) {
	var milestones []*models.JourneyMilestone
	if _, err := s.public(ctx, http.MethodGet, "/journey", nil, &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

func (s *Session) PublicHighlights(ctx context.Context) ([]*models.PortfolioHighlight, error) {
	var highlights []*models.PortfolioHighlight
	if _, err := s.public(ctx, http.MethodGet, "/highlights", nil, &highlights); err != nil {
		return nil, err
	}
	return highlights, nil
}

func (s *Session) ActiveResume(ctx context.Context) (*models.Resume, error) {
	var resume models.Resume
	if _, err := s.public(ctx, http.MethodGet, "/resume/active", nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (s *Session) PublicResumes(ctx context.Context) ([]*models.Resume, error) {
	var resumes []*models.Resume
	if _, err := s.public(ctx, http.MethodGet, "/resume/public", nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// Download describes a streamed resume file
type Download struct {
	FileName    string
	ContentType string
	Size        int64
}

// DownloadResume streams a public resume into w
func (s *Session) DownloadResume(ctx context.Context, id string, w io.Writer) (*Download, error) {
	resp, err := s.send(ctx, http.MethodGet, resourcePath("/resume/download", id), nil, "", "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		var body apiErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, newAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), nil)
		}
		return nil, newAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), &body)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to stream resume: %w", err)
	}

	d := &Download{ContentType: resp.Header.Get("Content-Type"), Size: n}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		d.FileName = params["filename"]
	}
	return d, nil
}

// SubmitContact sends the public contact form
func (s *Session) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if _, err := s.public(ctx, http.MethodPost, "/contact", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
