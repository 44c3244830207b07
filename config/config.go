// Package config holds the values of command line flags and the settings
// file that provides their defaults.
package config

import (
	"github.com/tranvictor/algosend/accounts"
)

var (
	From    string
	FromAcc accounts.AccDesc
	To      string
	Asset   uint64
	Amount  string
	Max     bool
	Note    string

	DontBroadcast     bool
	DontWaitToBeMined bool
	WaitRounds        uint64
	YesToAllPrompt    bool

	LogLevel  string
	LogFormat string
)
