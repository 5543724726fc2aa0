package model

import "strings"

type CropBucket string

const (
	BucketSoy   CropBucket = "soy"
	BucketCorn  CropBucket = "corn"
	BucketOther CropBucket = "other"
)

// SeasonYield aggregates closed-cycle yields per safra label. Exactly one
// record exists per distinct season string.
type SeasonYield struct {
	Season string  `json:"season"`
	Soy    float64 `json:"soy"`
	Corn   float64 `json:"corn"`
	Cotton float64 `json:"cotton,omitempty"`
	Other  float64 `json:"other,omitempty"`
}

// ClassifyCrop maps a crop name onto the three aggregation buckets by
// substring match. Everything that is not soy or corn collapses into other;
// widening the classification is a product decision, not a code one.
func ClassifyCrop(crop string) CropBucket {
	lower := strings.ToLower(crop)
	switch {
	case strings.Contains(lower, "soy") || strings.Contains(lower, "soja"):
		return BucketSoy
	case strings.Contains(lower, "corn") || strings.Contains(lower, "milho"):
		return BucketCorn
	default:
		return BucketOther
	}
}

// SetBucket overwrites one bucket; last write wins within a season.
func (s *SeasonYield) SetBucket(bucket CropBucket, value float64) {
	switch bucket {
	case BucketSoy:
		s.Soy = value
	case BucketCorn:
		s.Corn = value
	default:
		s.Other = value
	}
}
