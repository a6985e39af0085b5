// Command pidecode decodes a PI image file and writes it out as BMP or
// PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/yanagisawa/pi-codec/internal/bmpio"
	"github.com/yanagisawa/pi-codec/pi"
)

// Logging configuration.
const (
	logPath      = "pidecode.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
)

func main() {
	inPath := flag.String("in", "", "path to a .pi file")
	outPath := flag.String("out", "", "output path (default: input path with .bmp/.png)")
	pngOut := flag.Bool("png", false, "write PNG instead of BMP")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "pidecode: -in is required")
		os.Exit(2)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	logger := log.New(fileLog, "pidecode: ", log.LstdFlags)

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("pidecode: read %s: %v", *inPath, err)
	}

	indices, hdr, err := pi.Decode(data)
	if err != nil {
		logger.Printf("decode error: %v", err)
		log.Fatalf("pidecode: decode %s: %v", *inPath, err)
	}

	logger.Printf("comment=%q mode=%#x ratio=%.2f planes=%d editor=%q dimensions=%dx%d",
		hdr.Comment, hdr.Mode, hdr.Ratio, hdr.Planes, hdr.Editor, hdr.Width, hdr.Height)

	rgba := pi.Palette(hdr.Palette).RGBA(indices)

	out := *outPath
	if out == "" {
		if *pngOut {
			out = *inPath + ".png"
		} else {
			out = *inPath + ".bmp"
		}
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("pidecode: create %s: %v", out, err)
	}
	defer f.Close()

	if *pngOut {
		err = writePNG(f, rgba, hdr.Width, hdr.Height)
	} else {
		err = bmpio.Write(f, rgba, hdr.Width, hdr.Height)
	}
	if err != nil {
		log.Fatalf("pidecode: write %s: %v", out, err)
	}
}

func writePNG(f *os.File, rgba []byte, width, height int) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, rgba)
	return png.Encode(f, img)
}
