package usecase

// Recorder recibe los eventos del ciclo de vida para métricas. Lo implementa *metrics.Marketplace.
type Recorder interface {
	ProductCreated()
	ProductUpdated()
	ProductDeleted()
	OrderCreated()
	OrderStatusChanged(status string)
	Unauthorized(resource string)
}

type noopRecorder struct{}

func (noopRecorder) ProductCreated()           {}
func (noopRecorder) ProductUpdated()           {}
func (noopRecorder) ProductDeleted()           {}
func (noopRecorder) OrderCreated()             {}
func (noopRecorder) OrderStatusChanged(string) {}
func (noopRecorder) Unauthorized(string)       {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
