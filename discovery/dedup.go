package discovery

import "github.com/poiesic/vidsift/core"

// Deduplicator folds the admitted candidate stream into a unique sequence
// keyed by video id, first-seen-wins, preserving first-seen order. It also
// counts every distinct raw id it observes, admitted or not, so sessions
// can report "N raw ids observed vs M retained".
type Deduplicator struct {
	observed map[string]struct{}
	kept     map[string]struct{}
	videos   []core.Video
}

// NewDeduplicator creates an empty Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{
		observed: make(map[string]struct{}),
		kept:     make(map[string]struct{}),
	}
}

// Observe records a raw id sighting without retaining the candidate.
func (d *Deduplicator) Observe(id string) {
	d.observed[id] = struct{}{}
}

// Keep retains a candidate unless its id was kept before. Returns true
// when the candidate was newly retained. Keeping implies observing.
func (d *Deduplicator) Keep(video core.Video) bool {
	d.observed[video.ID] = struct{}{}
	if _, dup := d.kept[video.ID]; dup {
		return false
	}
	d.kept[video.ID] = struct{}{}
	d.videos = append(d.videos, video)
	return true
}

// Videos returns the retained candidates in first-seen order.
func (d *Deduplicator) Videos() []core.Video {
	return d.videos
}

// ObservedCount returns the number of distinct raw ids seen.
func (d *Deduplicator) ObservedCount() int {
	return len(d.observed)
}
