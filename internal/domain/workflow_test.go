package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gooze.dev/pkg/mutor/internal/adapter"
	adaptermocks "gooze.dev/pkg/mutor/internal/adapter/mocks"
	controllermocks "gooze.dev/pkg/mutor/internal/controller/mocks"
	"gooze.dev/pkg/mutor/internal/domain"
	m "gooze.dev/pkg/mutor/internal/model"
)

const calcSource = `package calc

func Add(a, b int) int {
	return a + b
}
`

func source(short, dir string) m.Source {
	return m.Source{
		Origin:  &m.File{ShortPath: m.Path(short), FullPath: m.Path("/src/" + short)},
		Package: m.Path("/src/" + dir),
	}
}

func TestWorkflow_List(t *testing.T) {
	defer goleak.VerifyNone(t)

	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	paths := []m.Path{"./..."}
	sources := []m.Source{source("calc/add.go", "calc"), source("calc/broken.go", "calc"), source("util/sub.go", "util")}

	mockFSAdapter.EXPECT().Get(mock.Anything, paths, "vendor/").Return(sources, nil).Once()
	mockFSAdapter.EXPECT().ReadFile(m.Path("/src/calc/add.go")).Return([]byte(calcSource), nil).Once()
	mockFSAdapter.EXPECT().ReadFile(m.Path("/src/calc/broken.go")).Return([]byte("package calc\nfunc"), nil).Once()
	mockFSAdapter.EXPECT().ReadFile(m.Path("/src/util/sub.go")).Return(nil, errors.New("permission denied")).Once()

	var results []m.FileResult

	mockUI.EXPECT().DisplayMutants(mock.Anything, mock.Anything).
		Run(func(_ context.Context, got []m.FileResult) { results = got }).
		Return(nil).Once()

	workflow := domain.NewWorkflow(mockFSAdapter, adapter.NewLocalGoFileAdapter(), mockUI, adapter.NewTextPlacer())

	err := workflow.List(context.Background(), domain.ListArgs{
		Paths:    paths,
		Exclude:  []string{"vendor/"},
		Parallel: 2,
		Config:   domain.Config{Level: m.LevelBasic},
	})
	require.NoError(t, err)

	require.Len(t, results, 3)

	add := results[0]
	require.NoError(t, add.Err)
	require.Len(t, add.Reports, 4)

	first := add.Reports[0]
	assert.Equal(t, 0, first.ID)
	assert.Equal(t, m.Path("calc/add.go"), first.File)
	assert.Equal(t, 4, first.Line)
	assert.Equal(t, 9, first.Column)
	assert.Equal(t, m.KindArithmetic, first.Kind)
	assert.Equal(t, "pending", first.Status)
	assert.Contains(t, first.Diff, "-\treturn a + b")
	assert.Contains(t, first.Diff, "+\treturn a - b")

	assert.Error(t, results[1].Err, "parse errors stay attached to their file")
	assert.Empty(t, results[1].Reports)

	assert.ErrorContains(t, results[2].Err, "permission denied")
}

func TestWorkflow_List_SourceError(t *testing.T) {
	defer goleak.VerifyNone(t)

	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	mockGoFileAdapter := adaptermocks.NewMockGoFileAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFSAdapter.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, adapter.ErrMissingSource).Once()

	workflow := domain.NewWorkflow(mockFSAdapter, mockGoFileAdapter, mockUI, nil)

	err := workflow.List(context.Background(), domain.ListArgs{Paths: []m.Path{"./missing"}})
	require.ErrorIs(t, err, adapter.ErrMissingSource)
}

func TestWorkflow_List_WithoutPlacer(t *testing.T) {
	defer goleak.VerifyNone(t)

	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFSAdapter.EXPECT().Get(mock.Anything, mock.Anything).Return([]m.Source{source("calc/add.go", "calc")}, nil).Once()
	mockFSAdapter.EXPECT().ReadFile(mock.Anything).Return([]byte(calcSource), nil).Once()

	mockUI.EXPECT().DisplayMutants(mock.Anything, mock.MatchedBy(func(results []m.FileResult) bool {
		if len(results) != 1 || len(results[0].Reports) == 0 {
			return false
		}

		for _, report := range results[0].Reports {
			if report.Diff != "" {
				return false
			}
		}

		return true
	})).Return(nil).Once()

	workflow := domain.NewWorkflow(mockFSAdapter, adapter.NewLocalGoFileAdapter(), mockUI, nil)

	require.NoError(t, workflow.List(context.Background(), domain.ListArgs{}))
}

func TestWorkflow_List_DisplayError(t *testing.T) {
	defer goleak.VerifyNone(t)

	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	mockGoFileAdapter := adaptermocks.NewMockGoFileAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	displayErr := errors.New("closed pipe")

	mockFSAdapter.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil).Once()
	mockUI.EXPECT().DisplayMutants(mock.Anything, mock.Anything).Return(displayErr).Once()

	workflow := domain.NewWorkflow(mockFSAdapter, mockGoFileAdapter, mockUI, nil)

	require.ErrorIs(t, workflow.List(context.Background(), domain.ListArgs{}), displayErr)
}

func TestWorkflow_List_Scopes(t *testing.T) {
	defer goleak.VerifyNone(t)

	mockUI := controllermocks.NewMockUI(t)

	var results []m.FileResult

	mockUI.EXPECT().DisplayMutants(mock.Anything, mock.Anything).
		Run(func(_ context.Context, got []m.FileResult) { results = got }).
		Return(nil).Once()

	workflow := domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalGoFileAdapter(),
		mockUI,
		adapter.NewTextPlacer(),
	)

	err := workflow.List(context.Background(), domain.ListArgs{
		Paths:  []m.Path{"testdata/scopes"},
		Config: domain.Config{Level: m.LevelComplete},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	reports := results[0].Reports
	require.NotEmpty(t, reports)

	for i, report := range reports {
		assert.Equal(t, i, report.ID)
		assert.Greater(t, report.Line, 6, "constants are never mutated: %+v", report)

		switch {
		case report.Line <= 18:
			assert.True(t, report.Static, "package initialization: %+v", report)
			assert.Equal(t, "pending", report.Status)
		case report.Line <= 25:
			assert.False(t, report.Static, "%+v", report)
			assert.Equal(t, "pending", report.Status)
			assert.NotEmpty(t, report.Diff)
		default:
			assert.Equal(t, "ignored", report.Status, "%+v", report)
			assert.Contains(t, report.Reason, "mutor:ignore")
		}
	}

	lines := make(map[int]bool)
	for _, report := range reports {
		lines[report.Line] = true
	}

	for _, line := range []int{9, 14, 15, 21, 22, 29} {
		assert.True(t, lines[line], "expected a mutant on line %d", line)
	}
}
