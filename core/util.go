package core

import (
	"errors"
	"math/rand"
	"sort"
	"time"
)

// errDone is a sentinel used internally to stop Do iteration early.
var errDone = errors.New("done")

// sortedKeys returns m's keys in sorted order.  Used where a plain
// map must merge into ordered knowledge deterministically.
func sortedKeys(m map[string]interface{}) []string {
	acc := make([]string, 0, len(m))
	for p := range m {
		acc = append(acc, p)
	}
	sort.Strings(acc)
	return acc
}

// alphabet is used by Gensym.
var alphabet = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Gensym makes a random string of the given length.  Handy for
// naming anonymous behaviors and test data.
func Gensym(n int) string {
	bs := make([]byte, n)
	for i := 0; i < len(bs); i++ {
		bs[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(bs)
}

// Timestamp returns a string representing the current time in
// RFC3339Nano.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
