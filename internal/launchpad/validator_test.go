package launchpad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeLaunch() *LaunchState {
	return &LaunchState{
		Creator:         testCreator,
		TokenMint:       testMint,
		SoftCap:         10_000_000_000,
		HardCap:         100_000_000_000,
		TokenPrice:      100_000,
		TokensForSale:   10_000_000_000_000_000,
		MinContribution: 100_000_000,
		MaxContribution: 5_000_000_000,
		LaunchStart:     1_000,
		LaunchEnd:       2_000,
		Status:          StatusActive,
	}
}

func TestValidateContributionBoundaries(t *testing.T) {
	state := activeLaunch()

	tests := []struct {
		name    string
		amount  uint64
		wantErr error
	}{
		{"exactly minimum", state.MinContribution, nil},
		{"exactly maximum", state.MaxContribution, nil},
		{"one below minimum", state.MinContribution - 1, &BelowMinimumError{}},
		{"one above maximum", state.MaxContribution + 1, &AboveMaximumError{}},
		{"mid range", 1_000_000_000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContribution(state, tt.amount, 9)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			switch tt.wantErr.(type) {
			case *BelowMinimumError:
				var target *BelowMinimumError
				assert.ErrorAs(t, err, &target)
				assert.Equal(t, tt.amount, target.Contribution)
				assert.Equal(t, state.MinContribution, target.MinContribution)
			case *AboveMaximumError:
				var target *AboveMaximumError
				assert.ErrorAs(t, err, &target)
				assert.Equal(t, tt.amount, target.Contribution)
				assert.Equal(t, state.MaxContribution, target.MaxContribution)
			}
		})
	}
}

func TestValidateContributionMinimumBeatsMaximum(t *testing.T) {
	// When min > max no amount can satisfy both; the minimum check fires
	// first for amounts below it.
	state := activeLaunch()
	state.MinContribution = 10
	state.MaxContribution = 5

	var below *BelowMinimumError
	assert.ErrorAs(t, ValidateContribution(state, 7, 9), &below)

	var above *AboveMaximumError
	assert.ErrorAs(t, ValidateContribution(state, 20, 9), &above)
}

func TestValidateContributionInsufficientSupply(t *testing.T) {
	// With price 1 and 0 decimals, lamports map 1:1 to tokens: asking for
	// 10 against 5 available must report 5 as the corrected maximum.
	state := activeLaunch()
	state.TokenPrice = 1
	state.TokensForSale = 5
	state.TokensSold = 0
	state.MinContribution = 1
	state.MaxContribution = 100

	var supplyErr *InsufficientSupplyError
	err := ValidateContribution(state, 10, 0)
	require.ErrorAs(t, err, &supplyErr)

	assert.Equal(t, uint64(10), supplyErr.TokensRequested)
	assert.Equal(t, uint64(5), supplyErr.AvailableTokens)
	assert.Equal(t, uint64(5), supplyErr.MaxContributionForAvailableTokens)

	// The corrected maximum itself must pass.
	assert.NoError(t, ValidateContribution(state, supplyErr.MaxContributionForAvailableTokens, 0))
}

func TestValidateContributionSupplyBoundary(t *testing.T) {
	// A contribution consuming exactly the remaining supply is accepted.
	state := activeLaunch()
	state.TokenPrice = 100_000
	state.TokensForSale = 10_000_000_000_000
	state.TokensSold = 0
	state.MinContribution = 1
	state.MaxContribution = 10_000_000_000

	assert.NoError(t, ValidateContribution(state, 1_000_000_000, 9))

	var supplyErr *InsufficientSupplyError
	assert.ErrorAs(t, ValidateContribution(state, 1_000_000_001, 9), &supplyErr)
}

func TestValidateContributionZeroPrice(t *testing.T) {
	state := activeLaunch()
	state.TokenPrice = 0

	err := ValidateContribution(state, 1_000_000_000, 9)
	assert.Error(t, err)
}

func TestAvailableTokens(t *testing.T) {
	state := activeLaunch()
	state.TokensForSale = 100
	state.TokensSold = 40
	assert.Equal(t, uint64(60), AvailableTokens(state))

	state.TokensSold = 100
	assert.Equal(t, uint64(0), AvailableTokens(state))

	// Oversold state from a buggy or upgraded program still reads as zero.
	state.TokensSold = 150
	assert.Equal(t, uint64(0), AvailableTokens(state))
}

func TestValidateLaunchOpen(t *testing.T) {
	global := &LaunchpadState{PlatformFeeBps: 200}

	tests := []struct {
		name    string
		mutate  func(*LaunchState, *LaunchpadState)
		now     int64
		amount  uint64
		wantErr bool
	}{
		{"open window", func(*LaunchState, *LaunchpadState) {}, 1_500, 1_000_000_000, false},
		{"at start", func(*LaunchState, *LaunchpadState) {}, 1_000, 1_000_000_000, false},
		{"at end", func(*LaunchState, *LaunchpadState) {}, 2_000, 1_000_000_000, false},
		{"before start", func(*LaunchState, *LaunchpadState) {}, 999, 1_000_000_000, true},
		{"after end", func(*LaunchState, *LaunchpadState) {}, 2_001, 1_000_000_000, true},
		{
			"paused platform",
			func(_ *LaunchState, g *LaunchpadState) { g.IsPaused = true },
			1_500, 1_000_000_000, true,
		},
		{
			"finalized launch",
			func(s *LaunchState, _ *LaunchpadState) { s.Status = StatusSuccessful },
			1_500, 1_000_000_000, true,
		},
		{
			"hard cap exceeded",
			func(s *LaunchState, _ *LaunchpadState) { s.TotalRaised = s.HardCap },
			1_500, 1, true,
		},
		{
			"exactly fills hard cap",
			func(s *LaunchState, _ *LaunchpadState) { s.TotalRaised = s.HardCap - 1_000_000_000 },
			1_500, 1_000_000_000, false,
		},
		{
			// raised+amount wraps around uint64; the headroom compare must
			// still reject it
			"amount overflows raised total",
			func(s *LaunchState, _ *LaunchpadState) { s.TotalRaised = s.HardCap - 1 },
			1_500, math.MaxUint64, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := activeLaunch()
			g := *global
			tt.mutate(state, &g)

			err := ValidateLaunchOpen(state, &g, tt.amount, tt.now)
			if tt.wantErr {
				var closed *LaunchClosedError
				assert.ErrorAs(t, err, &closed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLaunchOpenNilGlobal(t *testing.T) {
	// The global state account may not exist on a fresh deployment; only
	// per-launch rules apply then.
	assert.NoError(t, ValidateLaunchOpen(activeLaunch(), nil, 1_000_000_000, 1_500))
}
