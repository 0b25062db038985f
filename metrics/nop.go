package metrics

type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

type nopDistributorMetrics struct{}

func (nopDistributorMetrics) DispatchDuration(string) Timer { return nopTimer{} }
func (nopDistributorMetrics) Dispatched(string, Outcome) {}
func (nopDistributorMetrics) ActorsRunning(int) {}
func (nopDistributorMetrics) ActorExited(string, string) {}
func (nopDistributorMetrics) MailboxDepth(string, int) {}

// Nop returns a DistributorMetrics that records nothing.
func Nop() DistributorMetrics { return nopDistributorMetrics{} }
