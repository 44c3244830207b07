package accounts

import (
	"fmt"
	"sort"
	"strings"
)

// FuzzySource lets sahilm/fuzzy match a hint against "<address>_<desc>".
type FuzzySource []AccDesc

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", self[i].Address, strings.ReplaceAll(self[i].Desc, " ", "_"))
}

func NewFuzzySource() FuzzySource {
	accounts := GetAccounts()
	result := FuzzySource{}
	for _, acc := range accounts {
		result = append(result, acc)
	}
	// map order is random, keep ties deterministic
	sort.Slice(result, func(i, j int) bool { return result[i].Address < result[j].Address })
	return result
}
