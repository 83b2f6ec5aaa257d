package cli

import "time"

type Options struct {
	BaseURL     string
	Email       string
	Password    string
	PageSize    int
	JSON        bool
	Debug       bool
	LogFile     string
	SessionFile string
	Timeout     time.Duration
}
