package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/oledframes/internal/engine"
)

const bytesPerLine = 16

// Identifier is the C identifier prefix used for an animation
func Identifier(name string) string {
	id := strings.ReplaceAll(SafeName(name), "-", "_")
	if id[0] >= '0' && id[0] <= '9' {
		id = "anim_" + id
	}
	return id
}

// WriteHeader emits the frames as packed PROGMEM byte arrays for firmware.
// Each frame is row-major, most significant bit first, rows padded to bytes.
func WriteHeader(w io.Writer, res *engine.Result) error {
	if err := CheckNames(res); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "// Generated by oledframes. Do not edit.")
	fmt.Fprintln(bw, "#pragma once")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "#include <stdint.h>")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "#ifndef PROGMEM")
	fmt.Fprintln(bw, "#define PROGMEM")
	fmt.Fprintln(bw, "#endif")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "#define ANIM_WIDTH %d\n", res.Width)
	fmt.Fprintf(bw, "#define ANIM_HEIGHT %d\n", res.Height)
	fmt.Fprintf(bw, "#define ANIM_FPS %d\n", res.FPS)
	fmt.Fprintf(bw, "#define ANIM_FRAME_DELAY_MS %d\n", max(1, 1000/max(1, res.FPS)))

	for _, anim := range res.Animations {
		id := Identifier(anim.Name)
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "// %s: %d frames\n", anim.Name, len(anim.Frames))
		fmt.Fprintf(bw, "#define %s_FRAME_COUNT %d\n", strings.ToUpper(id), len(anim.Frames))

		for i, frame := range anim.Frames {
			fmt.Fprintf(bw, "static const uint8_t %s_frame_%04d[] PROGMEM = {\n", id, i)
			data := frame.Pack()
			for off := 0; off < len(data); off += bytesPerLine {
				end := min(off+bytesPerLine, len(data))
				parts := make([]string, 0, end-off)
				for _, b := range data[off:end] {
					parts = append(parts, fmt.Sprintf("0x%02X", b))
				}
				fmt.Fprintf(bw, "    %s,\n", strings.Join(parts, ", "))
			}
			fmt.Fprintln(bw, "};")
		}

		fmt.Fprintf(bw, "static const uint8_t* const %s_frames[] PROGMEM = {\n", id)
		for i := range anim.Frames {
			fmt.Fprintf(bw, "    %s_frame_%04d,\n", id, i)
		}
		fmt.Fprintln(bw, "};")
	}

	return bw.Flush()
}

// WriteHeaderFile writes the header to dir/animations.h and returns its path
func WriteHeaderFile(dir string, res *engine.Result) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "animations.h")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteHeader(f, res); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
