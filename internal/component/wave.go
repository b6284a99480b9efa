// internal/component/wave.go
package component

// Wave хранит таймеры текущей волны.
type Wave struct {
	Number       int
	ElapsedMs    float64
	SpawnTimerMs float64
	Ended        bool
}
