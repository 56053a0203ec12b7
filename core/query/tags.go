// ABOUTME: Tag category and value labeling for filter controls and searchable text
// ABOUTME: Curated vocabulary with a generic formatter fallback for out-of-vocabulary values

package query

import (
	"strings"
	"unicode"
)

// TagCategories is the fixed facet order used when rendering controls.
// Categories observed in the data but not listed here are appended after
// these, sorted ascending.
var TagCategories = []string{"paper_type", "backbone", "objective", "tokenization", "topology"}

var categoryLabels = map[string]string{
	"paper_type":   "Paper type",
	"backbone":     "Backbone",
	"objective":    "Objective",
	"tokenization": "Tokenization",
	"topology":     "Topology",
}

var tagLabels = map[string]map[string]string{
	"paper_type": {
		"new-model": "New model",
		"survey":    "Survey",
		"benchmark": "Benchmark",
		"dataset":   "Dataset",
		"analysis":  "Analysis",
		"position":  "Position",
		"other":     "Other",
	},
	"backbone": {
		"transformer": "Transformer",
		"cnn":         "CNN",
		"rnn":         "RNN",
		"gnn":         "GNN",
		"mamba-ssm":   "Mamba / SSM",
		"hybrid":      "Hybrid",
	},
	"objective": {
		"masked-reconstruction": "Masked reconstruction",
		"contrastive":           "Contrastive",
		"autoregressive":        "Autoregressive",
		"predictive":            "Predictive",
		"supervised":            "Supervised",
		"multi-task":            "Multi-task",
	},
	"tokenization": {
		"time-patch":      "Time patch",
		"channel-patch":   "Channel patch",
		"discrete-tokens": "Discrete tokens",
		"raw-signal":      "Raw signal",
		"frequency":       "Frequency",
	},
	"topology": {
		"fixed-montage":    "Fixed montage",
		"channel-flexible": "Channel flexible",
		"montage-agnostic": "Montage agnostic",
	},
}

// CategoryLabel returns the human title for a tag category.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return formatLabel(category)
}

// TagLabel returns the human label for a tag value. Values outside the
// curated vocabulary go through the generic formatter so the UI never
// crashes on unexpected data.
func TagLabel(category, value string) string {
	if values, ok := tagLabels[category]; ok {
		if label, ok := values[value]; ok {
			return label
		}
	}
	return formatLabel(value)
}

// formatLabel splits a raw tag value on hyphens and underscores and
// capitalizes each word.
func formatLabel(value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
