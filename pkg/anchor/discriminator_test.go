package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeInstructionDiscriminator(t *testing.T) {
	// Values fixed by the deployed programs; a change here breaks every
	// instruction this client emits.
	tests := []struct {
		instruction string
		wantHex     string
	}{
		{"create_token_launch", "5d573a7e584bace9"},
		{"contribute_to_launch", "f4c53acb5a3bea4a"},
		{"finalize_launch", "71853ec43ad476a6"},
		{"create_swap_intent", "f4aec6ceb8da9fe7"},
		{"execute_swap_intent", "07a680ada917f35c"},
		{"initialize_user", "6f11b9fa3c7a26fe"},
	}

	for _, tt := range tests {
		t.Run(tt.instruction, func(t *testing.T) {
			d := ComputeInstructionDiscriminator(tt.instruction)
			assert.Equal(t, tt.wantHex, d.String())
		})
	}
}

func TestAccountAndInstructionNamespacesDiffer(t *testing.T) {
	assert.NotEqual(t,
		ComputeInstructionDiscriminator("LaunchState"),
		ComputeAccountDiscriminator("LaunchState"))
}

func TestDiscriminatorFromBytes(t *testing.T) {
	want := ComputeAccountDiscriminator("LaunchState")

	d, err := DiscriminatorFromBytes(append(want.Bytes(), 0xAA, 0xBB))
	require.NoError(t, err)
	assert.Equal(t, want, d)

	_, err = DiscriminatorFromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncatedData)

	_, err = DiscriminatorFromBytes(nil)
	assert.ErrorIs(t, err, ErrTruncatedData)
}

func TestValidateDiscriminator(t *testing.T) {
	launch := ComputeAccountDiscriminator("LaunchState")
	contributor := ComputeAccountDiscriminator("ContributorState")

	assert.NoError(t, ValidateDiscriminator(launch.Bytes(), launch))

	// A buffer holding a different account kind must be rejected, not parsed.
	err := ValidateDiscriminator(contributor.Bytes(), launch)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
