package logger

import (
	"log"
	"os"
)

// New returns a logger writing to stdout when path is empty, or
// appending to the file at path otherwise.
func New(path string) *log.Logger {
	if len(path) == 0 {
		return log.New(os.Stdout, "mr2i ", log.Ldate|log.Ltime|log.Lshortfile)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		log.Fatal(err)
	}
	l := log.New(f, "mr2i ", log.Ldate|log.Ltime|log.Lshortfile)
	l.Printf("Initializing mr2i.log")
	return l
}
