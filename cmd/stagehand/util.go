package main

import (
	"encoding/json"
	"log"
)

var Verbose = true

func Copy(x interface{}) interface{} { // Sorry
	js, err := json.Marshal(&x)
	if err != nil {
		panic(err)
	}
	var y interface{}
	if err = json.Unmarshal(js, &y); err != nil {
		panic(err)
	}
	return y
}

func Logf(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	log.Printf(format, args...)
}

func Logln(args ...interface{}) {
	if !Verbose {
		return
	}
	log.Println(args...)
}
