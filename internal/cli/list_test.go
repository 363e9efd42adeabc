package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeBiancalana/todo/internal/render"
	"github.com/MikeBiancalana/todo/internal/task"
)

func plainOptions() listOptions {
	return listOptions{
		sort:   []task.SortBy{{Field: task.FieldID}},
		render: render.Options{Plain: true},
	}
}

func sampleTasks() task.List {
	return task.List{
		task.New(1, "(A) Call mom +family @phone"),
		task.New(2, "x 2024-01-02 2024-01-01 Buy milk @errands"),
		task.New(3, "Write report +work due:2024-02-01"),
	}
}

func TestListTasksFilterAndFooter(t *testing.T) {
	var buf bytes.Buffer
	err := listTasks(&buf, sampleTasks(), nil, []string{"@phone"}, plainOptions())
	require.NoError(t, err)

	want := "1 (A) Call mom +family @phone\n" +
		"--\nTODO: 1 of 3 tasks shown\n"
	assert.Equal(t, want, buf.String())
}

func TestListTasksNoTermsShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	err := listTasks(&buf, sampleTasks(), nil, nil, plainOptions())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "TODO: 3 of 3 tasks shown")
}

func TestListTasksBlankLinesExcludedFromCounts(t *testing.T) {
	tasks := task.List{
		task.New(1, "one"),
		task.New(2, ""),
		task.New(3, "three"),
	}
	var buf bytes.Buffer
	err := listTasks(&buf, tasks, nil, nil, plainOptions())
	require.NoError(t, err)

	want := "1 one\n3 three\n--\nTODO: 2 of 2 tasks shown\n"
	assert.Equal(t, want, buf.String())
}

func TestListTasksAllAppendsDone(t *testing.T) {
	done := task.List{
		task.New(0, "x 2024-01-01 archived chore @errands"),
		task.New(0, "x 2024-01-03 another one"),
	}
	opts := plainOptions()
	opts.all = true

	var buf bytes.Buffer
	err := listTasks(&buf, sampleTasks(), done, []string{"@errands"}, opts)
	require.NoError(t, err)

	want := "2 x 2024-01-02 2024-01-01 Buy milk @errands\n" +
		"0 x 2024-01-01 archived chore @errands\n" +
		"--\nTODO: 1 of 3 tasks shown\n" +
		"DONE: 1 of 2 tasks shown\n"
	assert.Equal(t, want, buf.String())
}

func TestListTasksLiteralTerms(t *testing.T) {
	var buf bytes.Buffer
	err := listTasks(&buf, sampleTasks(), nil, []string{"+work", "-@home"}, plainOptions())
	require.NoError(t, err)

	want := "3 Write report +work due:2024-02-01\n" +
		"--\nTODO: 1 of 3 tasks shown\n"
	assert.Equal(t, want, buf.String())
}

func TestListTasksPriorities(t *testing.T) {
	tasks := task.List{
		task.New(1, "(A) urgent"),
		task.New(2, "no priority"),
		task.New(3, "(B) important"),
	}

	opts := plainOptions()
	opts.priorities = []byte{} // any priority
	var buf bytes.Buffer
	require.NoError(t, listTasks(&buf, tasks, nil, nil, opts))
	assert.Equal(t, "1 (A) urgent\n3 (B) important\n--\nTODO: 2 of 2 tasks shown\n", buf.String())

	tasks = task.List{
		task.New(1, "(A) urgent"),
		task.New(2, "no priority"),
		task.New(3, "(B) important"),
	}
	opts.priorities = []byte{'B'}
	buf.Reset()
	require.NoError(t, listTasks(&buf, tasks, nil, nil, opts))
	assert.Equal(t, "3 (B) important\n--\nTODO: 1 of 1 tasks shown\n", buf.String())
}

func TestListTasksCustomSort(t *testing.T) {
	opts := plainOptions()
	opts.sort = []task.SortBy{{Field: task.FieldPriority}, {Field: task.FieldID}}

	tasks := task.List{
		task.New(1, "plain"),
		task.New(2, "(B) second"),
		task.New(3, "(A) first"),
	}
	var buf bytes.Buffer
	require.NoError(t, listTasks(&buf, tasks, nil, nil, opts))

	want := "3 (A) first\n2 (B) second\n1 plain\n--\nTODO: 3 of 3 tasks shown\n"
	assert.Equal(t, want, buf.String())
}

func TestParseSortSpec(t *testing.T) {
	spec, err := parseSortSpec("")
	require.NoError(t, err)
	assert.Equal(t, []task.SortBy{{Field: task.FieldID}}, spec)

	spec, err = parseSortSpec("priority,-due,id")
	require.NoError(t, err)
	assert.Equal(t, []task.SortBy{
		{Field: task.FieldPriority},
		{Field: task.FieldDueDate, Reverse: true},
		{Field: task.FieldID},
	}, spec)

	_, err = parseSortSpec("priority,bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort field")
}

func TestParsePriorities(t *testing.T) {
	pris, err := parsePriorities(nil)
	require.NoError(t, err)
	assert.NotNil(t, pris)
	assert.Empty(t, pris)

	pris, err = parsePriorities([]string{"a", "B"})
	require.NoError(t, err)
	assert.Equal(t, []byte{'A', 'B'}, pris)

	_, err = parsePriorities([]string{"AB"})
	require.Error(t, err)

	_, err = parsePriorities([]string{"1"})
	require.Error(t, err)
}
