package dsp

// Frame compositing for the viewfinder kernel. The three policies match
// the reference merge kernel: two-exposure averaging, side-by-side split
// with a parity flip, and straight passthrough.

// FuseRow composites one row of the current frame against the previous
// frame and writes converted RGBA output.
//
// yRow holds the luma row and uRow/vRow the 4:2:0 chroma rows covering
// it, sampled at x/2. dstRow and prevRow are packed RGBA rows of the same
// pixel width as yRow. prevRow is read as the "previous" compositing
// operand and then overwritten with the current frame's raw (Y, U, V, 255)
// for the next invocation, regardless of the active policy.
//
// Note that prevRow carries raw YUV values in RGBA-shaped slots, and the
// conversion below treats the merged pixel as YUV even when it came from
// the previous buffer. The reference kernel reuses one buffer element type
// for both meanings; kept as-is for bit-compatibility.
func FuseRow(dstRow, prevRow, yRow, uRow, vRow []byte, doMerge bool, cutPointX, frameCounter int) {
	flip := frameCounter&1 == 1
	for x := range yRow {
		cy := yRow[x]
		cu := uRow[x>>1]
		cv := vRow[x>>1]

		prev := prevRow[4*x : 4*x+4 : 4*x+4]

		var my, mu, mv uint8
		switch {
		case doMerge:
			// Truncating per-channel average of current and previous.
			my = cy/2 + prev[0]/2
			mu = cu/2 + prev[1]/2
			mv = cv/2 + prev[2]/2
		case cutPointX > 0:
			// Side-by-side composite; parity flips which side is live.
			if (x < cutPointX) != flip {
				my, mu, mv = cy, cu, cv
			} else {
				my, mu, mv = prev[0], prev[1], prev[2]
			}
		default:
			my, mu, mv = cy, cu, cv
		}

		YUVToRGBA(int(my), int(mu), int(mv), dstRow[4*x:4*x+4])

		// The previous buffer keeps the raw current-frame pixel, not the
		// merged or converted one.
		prev[0], prev[1], prev[2], prev[3] = cy, cu, cv, 0xff
	}
}
