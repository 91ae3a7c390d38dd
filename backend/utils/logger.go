package utils

import (
	"log"
	"os"
)

// InitLogger builds the shared application logger.
func InitLogger(output ...*os.File) *log.Logger {
	out := os.Stdout
	if len(output) > 0 && output[0] != nil {
		out = output[0]
	}
	return log.New(out, "[GeneQuest] ", log.LstdFlags|log.LUTC)
}
