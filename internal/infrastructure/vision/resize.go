package vision

// resizeBilinear scales a row-major float grid to dstW×dstH using bilinear
// interpolation with half-pixel centers (same convention as OpenCV).
func resizeBilinear(src []float64, srcW, srcH, dstW, dstH int) []float64 {
	dst := make([]float64, dstW*dstH)
	if srcW <= 0 || srcH <= 0 {
		return dst
	}
	if srcW == dstW && srcH == dstH {
		copy(dst, src)
		return dst
	}

	scaleX := float64(srcW) / float64(dstW)
	scaleY := float64(srcH) / float64(dstH)

	for y := 0; y < dstH; y++ {
		sy := (float64(y)+0.5)*scaleY - 0.5
		y0, fy := splitCoord(sy, srcH)
		y1 := clampIndex(y0+1, srcH)

		for x := 0; x < dstW; x++ {
			sx := (float64(x)+0.5)*scaleX - 0.5
			x0, fx := splitCoord(sx, srcW)
			x1 := clampIndex(x0+1, srcW)

			top := src[y0*srcW+x0]*(1-fx) + src[y0*srcW+x1]*fx
			bottom := src[y1*srcW+x0]*(1-fx) + src[y1*srcW+x1]*fx
			dst[y*dstW+x] = top*(1-fy) + bottom*fy
		}
	}

	return dst
}

// splitCoord clamps a source coordinate and splits it into a base index and
// an interpolation fraction.
func splitCoord(v float64, limit int) (int, float64) {
	if v <= 0 {
		return 0, 0
	}
	base := int(v)
	if base >= limit-1 {
		return limit - 1, 0
	}
	return base, v - float64(base)
}

func clampIndex(i, limit int) int {
	if i > limit-1 {
		return limit - 1
	}
	return i
}
