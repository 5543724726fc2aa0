package model

import "testing"

func TestClassifyCrop(t *testing.T) {
	cases := []struct {
		crop string
		want CropBucket
	}{
		{"Soja", BucketSoy},
		{"soybean", BucketSoy},
		{"Milho Safrinha", BucketCorn},
		{"corn", BucketCorn},
		{"Algodão", BucketOther},
		{"", BucketOther},
	}
	for _, c := range cases {
		if got := ClassifyCrop(c.crop); got != c.want {
			t.Fatalf("ClassifyCrop(%q) = %q, want %q", c.crop, got, c.want)
		}
	}
}

func TestSetBucketLastWriteWins(t *testing.T) {
	record := SeasonYield{Season: "23/24"}
	record.SetBucket(BucketSoy, 60)
	record.SetBucket(BucketSoy, 65)
	record.SetBucket(BucketCorn, 110)

	if record.Soy != 65 {
		t.Fatalf("soy = %v, want 65", record.Soy)
	}
	if record.Corn != 110 {
		t.Fatalf("corn = %v, want 110", record.Corn)
	}
	if record.Other != 0 {
		t.Fatalf("other = %v, want 0", record.Other)
	}
}
