package dto

type TagCountDTO struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type TagOverviewDTO struct {
	Tags    []string       `json:"tags"`
	Summary []*TagCountDTO `json:"summary"`
}
