package services

import (
	"math"
	"sort"

	"taskphoto.com/taskphoto/internal/constants"
	model "taskphoto.com/taskphoto/internal/models"
)

type Stats struct {
	Total        int                          `json:"total"`
	Approved     int                          `json:"approved"`
	InProgress   int                          `json:"in_progress"`
	Review       int                          `json:"review"`
	ApprovalRate int                          `json:"approval_rate"`
	ByStatus     map[constants.TaskStatus]int `json:"by_status"`
}

type AssigneeStats struct {
	Assignee string `json:"assignee"`
	Avatar   string `json:"avatar"`
	Total    int    `json:"total"`
	Approved int    `json:"approved"`
	Rate     int    `json:"rate"`
}

func ComputeStats(tasks []model.Task) Stats {
	counts := StatusCounts(tasks)
	return Stats{
		Total:        len(tasks),
		Approved:     counts[constants.StatusApproved],
		InProgress:   counts[constants.StatusInProgress],
		Review:       counts[constants.StatusReview],
		ApprovalRate: percent(counts[constants.StatusApproved], len(tasks)),
		ByStatus:     counts,
	}
}

// StatusCounts has an entry for every known status, zero included.
func StatusCounts(tasks []model.Task) map[constants.TaskStatus]int {
	counts := make(map[constants.TaskStatus]int, len(constants.TaskStatuses))
	for _, status := range constants.TaskStatuses {
		counts[status] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// GroupByAssignee returns one entry per assignee name, sorted by name.
func GroupByAssignee(tasks []model.Task) []AssigneeStats {
	byName := make(map[string]*AssigneeStats)
	for _, t := range tasks {
		s, ok := byName[t.Assignee]
		if !ok {
			s = &AssigneeStats{Assignee: t.Assignee, Avatar: t.AssigneeAvatar}
			byName[t.Assignee] = s
		}
		s.Total++
		if t.Status == constants.StatusApproved {
			s.Approved++
		}
	}

	out := make([]AssigneeStats, 0, len(byName))
	for _, s := range byName {
		s.Rate = percent(s.Approved, s.Total)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Assignee < out[j].Assignee })
	return out
}

// percent rounds part/total to the nearest whole percent; an empty total is 0%.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
