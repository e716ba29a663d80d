package pack

// Byte-run RLE with an escape marker. A run is encoded as
// marker, byte, count; the marker byte itself is always encoded as a
// run, so plain bytes never collide with it. Runs shorter than four
// bytes are left literal (the encoded form would be no shorter).
const rleMarker byte = 0x90

const (
	rleMinRun = 4
	rleMaxRun = 255
)

func rleCompress(d []byte) []byte {
	out := make([]byte, 0, len(d))
	for i := 0; i < len(d); {
		b := d[i]
		n := 1
		for i+n < len(d) && d[i+n] == b && n < rleMaxRun {
			n++
		}
		if n >= rleMinRun || b == rleMarker {
			out = append(out, rleMarker, b, byte(n))
		} else {
			for range n {
				out = append(out, b)
			}
		}
		i += n
	}
	return out
}

func rleDecompress(d []byte) []byte {
	out := make([]byte, 0, len(d))
	for i := 0; i < len(d); {
		if d[i] != rleMarker {
			out = append(out, d[i])
			i++
			continue
		}
		if i+2 >= len(d) {
			// truncated escape, keep what remains literal
			out = append(out, d[i:]...)
			break
		}
		b, n := d[i+1], int(d[i+2])
		for range n {
			out = append(out, b)
		}
		i += 3
	}
	return out
}
