package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettingsPatch_ApplyTo(t *testing.T) {
	on, off := true, false
	hours := 72
	pin := "1234"

	settings := DefaultUserSettings()
	settings.SOSPinHash = "kept"

	patch := &SettingsPatch{ShakeToSOS: &on, Vibration: &off, AutoDeleteLocationAfterHours: &hours, SOSPin: &pin}
	patch.ApplyTo(&settings)

	assert.True(t, settings.ShakeToSOS)
	assert.False(t, settings.Vibration)
	assert.True(t, settings.NotificationSound, "absent fields are untouched")
	assert.Equal(t, 72*time.Hour, settings.LocationRetention())
	assert.Equal(t, "kept", settings.SOSPinHash)
}

func TestSettingsPatch_IsEmpty(t *testing.T) {
	var missing *SettingsPatch
	on := true

	assert.True(t, missing.IsEmpty())
	assert.True(t, (&SettingsPatch{}).IsEmpty())
	assert.False(t, (&SettingsPatch{Vibration: &on}).IsEmpty())
}

func TestDefaultUserSettings(t *testing.T) {
	settings := DefaultUserSettings()

	assert.False(t, settings.HasSOSPin())
	assert.False(t, settings.ShakeToSOS)
	assert.Equal(t, 24*time.Hour, settings.LocationRetention())
}
