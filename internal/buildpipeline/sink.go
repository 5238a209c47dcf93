package buildpipeline

// ChannelSink sends events to Ch; a nil channel drops them. The UI reads
// the other end, so a slow reader slows the build down instead of losing
// file states.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}
