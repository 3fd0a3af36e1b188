package scoring

import "github.com/vytor/flexstats/internal/models"

// Classify maps a rank within a match of n participants to its bucket.
// Ranks outside 1..n yield the empty bucket.
//
// Matches of 5 and 10 use fixed schemes. Other sizes keep MVP and Troll at
// the ends, Great and Good for ranks 2 and 3, then OK for the upper half and
// Meh below it.
func Classify(rank, n int) models.Bucket {
	if n < 1 || rank < 1 || rank > n {
		return ""
	}
	if n == 10 {
		switch {
		case rank == 1:
			return models.BucketMVP
		case rank == 2:
			return models.BucketGreat
		case rank == 3:
			return models.BucketGood
		case rank <= 5:
			return models.BucketOK
		case rank <= 7:
			return models.BucketMeh
		case rank <= 9:
			return models.BucketBad
		default:
			return models.BucketTroll
		}
	}

	switch {
	case rank == 1:
		return models.BucketMVP
	case rank == n:
		return models.BucketTroll
	case rank == 2:
		return models.BucketGreat
	case rank == 3:
		return models.BucketGood
	case rank <= (n+1)/2:
		return models.BucketOK
	default:
		return models.BucketMeh
	}
}
