package config

import "github.com/expki/go-dataminer/compute"

// Similarity holds the defaults of the similarity command.
type Similarity struct {
	TopN      int  `json:"top_n"`
	WithMean  bool `json:"with_mean"`
	WithStd   bool `json:"with_std"`
	ExactTopN bool `json:"exact_top_n"`
	// Precision is the number of decimals printed; negative prints the shortest exact form.
	Precision int `json:"precision"`
}

func (s Similarity) Options() compute.Options {
	return compute.Options{
		TopN:      s.TopN,
		WithMean:  s.WithMean,
		WithStd:   s.WithStd,
		ExactTopN: s.ExactTopN,
	}
}
