package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/breate-dev/breate/internal/cli/config"
	"github.com/stretchr/testify/require"
)

type mockProjectLister struct {
	projects []client.Project
	err      error
	calls    int
}

func (m *mockProjectLister) ListProjects(ctx context.Context) ([]client.Project, error) {
	m.calls++
	return m.projects, m.err
}

func TestRunProjectsList_Empty(t *testing.T) {
	mock := &mockProjectLister{}
	var out bytes.Buffer

	err := runProjectsList(context.Background(), "",
		WithProjectsClient(mock),
		WithProjectsOutput(&out),
	)
	require.NoError(t, err)
	require.Equal(t, 1, mock.calls)
	require.Contains(t, out.String(), "No projects found.")
	require.Contains(t, out.String(), "breate projects create")
}

func TestRunProjectsList_Table(t *testing.T) {
	mock := &mockProjectLister{
		projects: []client.Project{
			{ID: 1, Title: "Solar Kiln", ProjectType: "hardware", Status: "active", Region: "EU"},
			{ID: 2, Title: "Field Notes", ProjectType: "zine", Status: "draft", Region: "NA"},
		},
	}
	var out bytes.Buffer

	err := runProjectsList(context.Background(), "",
		WithProjectsClient(mock),
		WithProjectsEnvironment(&config.Environment{Name: "local", BaseURL: "http://localhost:8000/api/v1"}),
		WithProjectsOutput(&out),
	)
	require.NoError(t, err)

	output := out.String()
	require.Contains(t, output, "Projects on local (http://localhost:8000/api/v1):")
	require.Contains(t, output, "ID")
	require.Contains(t, output, "Solar Kiln")
	require.Contains(t, output, "Field Notes")
	require.Contains(t, output, "draft")
}

func TestRunProjectsList_Error(t *testing.T) {
	mock := &mockProjectLister{err: errors.New("connection refused")}
	var out bytes.Buffer

	err := runProjectsList(context.Background(), "",
		WithProjectsClient(mock),
		WithProjectsOutput(&out),
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection refused")
}

func TestRunProjectsList_UnauthorizedBecomesFriendly(t *testing.T) {
	mock := &mockProjectLister{err: &client.UnauthorizedError{
		HTTPError: client.HTTPError{StatusCode: 401, Detail: "Not authenticated"},
	}}
	var out bytes.Buffer

	err := runProjectsList(context.Background(), "",
		WithProjectsClient(mock),
		WithProjectsOutput(&out),
	)
	require.Error(t, err)
	require.Equal(t, "session expired. Run 'breate login' to sign in again", err.Error())
}

func TestSplitList(t *testing.T) {
	require.Nil(t, splitList(""))
	require.Equal(t, []string{"maker"}, splitList("maker"))
	require.Equal(t, []string{"maker", "strategist"}, splitList("maker, strategist"))
	require.Equal(t, []string{"maker"}, splitList("maker, ,"))
}
