// Package notification delivers renewal reminders and their supporting pieces.
package notification

import "github.com/subtracker/backend/internal/domain/entity"

// soundClips maps sound tones to their hosted audio clips.
var soundClips = map[string]string{
	entity.SoundToneDigital: "https://assets.mixkit.co/active_storage/sfx/2869/2869-preview.mp3",
	entity.SoundToneBell:    "https://assets.mixkit.co/active_storage/sfx/2568/2568-preview.mp3",
	entity.SoundTonePlayful: "https://assets.mixkit.co/active_storage/sfx/2358/2358-preview.mp3",
	entity.SoundToneGentle:  "https://assets.mixkit.co/active_storage/sfx/2190/2190-preview.mp3",
}

// ClipURL resolves a sound tone to its audio clip URL.
// Unknown tones, "" and "None" resolve to silence.
func ClipURL(tone string) string {
	return soundClips[tone]
}
