package services

import (
	"testing"

	"taskphoto.com/taskphoto/internal/constants"
	model "taskphoto.com/taskphoto/internal/models"
)

func tasksWith(statuses ...constants.TaskStatus) []model.Task {
	out := make([]model.Task, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, model.Task{ID: uint(i + 1), Status: s})
	}
	return out
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.Total != 0 || stats.ApprovalRate != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if len(stats.ByStatus) != len(constants.TaskStatuses) {
		t.Errorf("expected a count for every status, got %v", stats.ByStatus)
	}
}

func TestComputeStats_Rounding(t *testing.T) {
	cases := []struct {
		tasks []model.Task
		want  int
	}{
		{tasksWith(constants.StatusApproved, constants.StatusNew, constants.StatusReview), 33},
		{tasksWith(constants.StatusApproved, constants.StatusApproved, constants.StatusRejected), 67},
		{tasksWith(constants.StatusApproved, constants.StatusNew), 50},
		{tasksWith(constants.StatusApproved), 100},
	}

	for _, tc := range cases {
		if got := ComputeStats(tc.tasks).ApprovalRate; got != tc.want {
			t.Errorf("expected %d%%, got %d%%", tc.want, got)
		}
	}
}

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts(tasksWith(
		constants.StatusNew,
		constants.StatusNew,
		constants.StatusReview,
	))

	if counts[constants.StatusNew] != 2 || counts[constants.StatusReview] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if c, ok := counts[constants.StatusRejected]; !ok || c != 0 {
		t.Errorf("expected explicit zero for rejected, got %v", counts)
	}
}

func TestGroupByAssignee(t *testing.T) {
	tasks := []model.Task{
		{Assignee: "Мария", AssigneeAvatar: "М", Status: constants.StatusApproved},
		{Assignee: "Анна", AssigneeAvatar: "А", Status: constants.StatusApproved},
		{Assignee: "Анна", AssigneeAvatar: "А", Status: constants.StatusNew},
		{Assignee: "Анна", AssigneeAvatar: "А", Status: constants.StatusReview},
	}

	got := GroupByAssignee(tasks)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
	if got[0].Assignee != "Анна" || got[0].Total != 3 || got[0].Approved != 1 || got[0].Rate != 33 {
		t.Errorf("unexpected group: %+v", got[0])
	}
	if got[1].Assignee != "Мария" || got[1].Rate != 100 {
		t.Errorf("unexpected group: %+v", got[1])
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Анна Петрова":           "АП",
		"мария сидорова иванова": "МС",
		"  Olga  ":               "O",
		"":                       "??",
	}

	for name, want := range cases {
		if got := initials(name, "??"); got != want {
			t.Errorf("initials(%q) = %q, want %q", name, got, want)
		}
	}
}
