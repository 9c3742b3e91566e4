package stats

import (
	"math/rand/v2"

	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/models"
)

// Sampler draws random samples of column values.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler. A nil seed gives a randomly seeded source.
func NewSampler(seed *uint64) *Sampler {
	var src rand.Source
	if seed != nil {
		src = rand.NewPCG(*seed, *seed)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// Sample draws min(n, present) values uniformly at random without
// replacement from the non-missing values of col.
func (s *Sampler) Sample(col *models.Column, n int) []models.Value {
	present := make([]models.Value, 0, len(col.Values))
	for _, v := range col.Values {
		if !v.IsMissing() {
			present = append(present, v)
		}
	}

	k := min(max(n, 0), len(present))
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(present)-i)
		present[i], present[j] = present[j], present[i]
	}
	return present[:k:k]
}

// Samples draws a sample for every column in sheet order.
func (s *Sampler) Samples(sheet *models.SheetData, n int) []models.SampleSet {
	sets := make([]models.SampleSet, len(sheet.Columns))
	for i := range sheet.Columns {
		sets[i] = models.SampleSet{
			Column: sheet.Columns[i].Name,
			Values: s.Sample(&sheet.Columns[i], n),
		}
	}
	return sets
}
