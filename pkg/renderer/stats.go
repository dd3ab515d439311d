package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int     // Total number of pixels rendered
	TotalSamples     int     // Total number of samples taken
	AverageSamples   float64 // Average samples per pixel
	MaxSamples       int     // Sample target per pixel for this pass
	MinSamples       int     // Minimum samples taken by any pixel
	MaxSamplesUsed   int     // Maximum samples taken by any pixel
	AverageLuminance float64 // Mean perceptual luminance of the image
}
