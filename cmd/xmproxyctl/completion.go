package main

import (
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
)

// completionOptions returns the predictors wired into shell completion.
func completionOptions() []kongplete.Option {
	return []kongplete.Option{
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
	}
}
