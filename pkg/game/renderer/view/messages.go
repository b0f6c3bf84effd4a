package view

// Message represents a log line with the time it was first shown
type Message struct {
	Text      string
	Timestamp int64 // Unix timestamp in milliseconds
}

// FadeAlpha returns the opacity of a message added at addedAt: fully
// visible for hold milliseconds, then fading out over fade milliseconds.
func FadeAlpha(addedAt, now, hold, fade int64) float64 {
	age := now - addedAt
	switch {
	case age < hold:
		return 1
	case fade <= 0 || age >= hold+fade:
		return 0
	}
	return 1 - float64(age-hold)/float64(fade)
}

// TrackMessages aligns tracked entries with the current log. The log only
// grows at the end and drops from the front, so the longest suffix of
// tracked that is a prefix of msgs keeps its timestamps and the rest of msgs
// is stamped with now.
func TrackMessages(tracked []Message, msgs []string, now int64) []Message {
	var kept []Message
	for start := 0; start < len(tracked); start++ {
		suffix := tracked[start:]
		if len(suffix) > len(msgs) {
			continue
		}
		match := true
		for i, m := range suffix {
			if m.Text != msgs[i] {
				match = false
				break
			}
		}
		if match {
			kept = suffix
			break
		}
	}

	out := make([]Message, 0, len(msgs))
	out = append(out, kept...)
	for _, m := range msgs[len(kept):] {
		out = append(out, Message{Text: m, Timestamp: now})
	}
	return out
}
