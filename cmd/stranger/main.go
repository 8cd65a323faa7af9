package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// UTF-8 fallback so non-ASCII names render on terminals with odd locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
