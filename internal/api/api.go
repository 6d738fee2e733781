// Package api defines the messages exchanged with the WebNest project
// service. Messages travel as JSON over the Connect unary protocol.
package api

import (
	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/models"
)

// Selection is the wire form of a wizard selection.
type Selection struct {
	ProjectType string              `json:"project_type"`
	Industry    string              `json:"industry"`
	Features    []string            `json:"features"`
	Team        []models.TeamMember `json:"team"`
	AddOns      []string            `json:"add_ons"`
	Pages       []string            `json:"pages"`
	Theme       string              `json:"theme,omitempty"`
}

type GetCatalogRequest struct{}

type GetCatalogResponse struct {
	Catalog catalog.Data `json:"catalog"`
}

type EstimateRequest struct {
	Selection Selection `json:"selection"`
}

type EstimateResponse struct {
	// OK is false when the selection lacks a project type or industry.
	OK              bool              `json:"ok"`
	Estimate        models.Estimate   `json:"estimate"`
	Items           []models.LineItem `json:"items,omitempty"`
	AdditionalPages int               `json:"additional_pages"`
}

// CreateProjectRequest is what a finished wizard submits. Budget is in local
// currency; USD is not transmitted.
type CreateProjectRequest struct {
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	ProjectType        string              `json:"project_type"`
	Budget             int64               `json:"budget"`
	Features           []string            `json:"features"`
	Timeline           int                 `json:"timeline"`
	CustomRequirements models.Requirements `json:"custom_requirements"`
}

type CreateProjectResponse struct {
	ProjectID string `json:"project_id"`
}

type GetProjectRequest struct {
	ProjectID string `json:"project_id"`
}

type GetProjectResponse struct {
	Project Project `json:"project"`
}

type ListProjectsRequest struct {
	// Limit caps the number of projects returned; 0 means the server default.
	Limit int `json:"limit"`
}

type ListProjectsResponse struct {
	Projects []Project `json:"projects"`
}

// Project is a stored project as returned by the service.
type Project struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	ProjectType        string              `json:"project_type"`
	Budget             int64               `json:"budget"`
	Features           []string            `json:"features"`
	Timeline           int                 `json:"timeline"`
	CustomRequirements models.Requirements `json:"custom_requirements"`
	CreatedBy          string              `json:"created_by,omitempty"`
	CreatedAt          int64               `json:"created_at"`
}

// LogAttrs returns the request fields logged with each RPC.
func (r *EstimateRequest) LogAttrs() []any {
	return []any{"project_type", r.Selection.ProjectType, "industry", r.Selection.Industry}
}

func (r *CreateProjectRequest) LogAttrs() []any {
	return []any{
		"project_type", r.ProjectType,
		"industry", r.CustomRequirements.Industry,
		"budget", r.Budget,
		"features", len(r.Features),
	}
}

func (r *GetProjectRequest) LogAttrs() []any {
	return []any{"project_id", r.ProjectID}
}

func (r *ListProjectsRequest) LogAttrs() []any {
	return []any{"limit", r.Limit}
}
