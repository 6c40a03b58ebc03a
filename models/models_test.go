package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionInfo_Clone_DoesNotShareSafes(t *testing.T) {
	orig := SessionInfo{EOA: "0xABC", Safes: []string{"0x111", "0x222"}}
	cp := orig.Clone()
	cp.Safes[0] = "0xchanged"

	assert.Equal(t, "0x111", orig.Safes[0])
	assert.Equal(t, "0xABC", cp.EOA)
}

func TestSessionInfo_Clone_KeepsNilSafes(t *testing.T) {
	cp := SessionInfo{EOA: "0xDEF"}.Clone()
	assert.Nil(t, cp.Safes)
	assert.False(t, cp.HasSafes())
}

func TestAdapterModalConfig_VisibleOn(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AdapterModalConfig
		mobile  bool
		visible bool
	}{
		{"defaults desktop", AdapterModalConfig{}, false, true},
		{"defaults mobile", AdapterModalConfig{}, true, true},
		{"hidden from modal", AdapterModalConfig{ShowOnModal: BoolPtr(false)}, false, false},
		{"desktop only on desktop", AdapterModalConfig{ShowOnDesktop: BoolPtr(true), ShowOnMobile: BoolPtr(false)}, false, true},
		{"desktop only on mobile", AdapterModalConfig{ShowOnDesktop: BoolPtr(true), ShowOnMobile: BoolPtr(false)}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.cfg.VisibleOn(tt.mobile))
		})
	}
}

func TestAuthOptions_HiddenAdapters(t *testing.T) {
	opts := AuthOptions{ModalConfig: map[string]AdapterModalConfig{
		AdapterTorusEVM: {Label: "torus", ShowOnModal: BoolPtr(false)},
		AdapterMetamask: {Label: "metamask", ShowOnDesktop: BoolPtr(true), ShowOnMobile: BoolPtr(false)},
	}}

	assert.Equal(t, []string{AdapterTorusEVM}, opts.HiddenAdapters(false))
	assert.Equal(t, []string{AdapterMetamask, AdapterTorusEVM}, opts.HiddenAdapters(true))
}

func TestMFALevelAndUXMode_Valid(t *testing.T) {
	assert.True(t, MFALevelMandatory.Valid())
	assert.False(t, MFALevel("always").Valid())
	assert.True(t, UXModePopup.Valid())
	assert.False(t, UXMode("inline").Valid())
}

func TestNewAppBuildInfo_BlankIsNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", " ", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildVersion())
}

func TestSessionState_StringAndBusy(t *testing.T) {
	tests := []struct {
		state SessionState
		name  string
		busy  bool
	}{
		{SessionIdle, "idle", false},
		{SessionInitializing, "initializing", true},
		{SessionReady, "ready", false},
		{SessionSigningIn, "signing in", true},
		{SessionSigningOut, "signing out", true},
		{SessionState(42), "unknown", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.state.String())
		assert.Equal(t, tt.busy, tt.state.Busy(), tt.name)
	}
}
