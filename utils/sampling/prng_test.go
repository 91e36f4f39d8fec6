package sampling_test

import (
	"testing"

	"github.com/realpoly/realpoly/utils/sampling"
	"github.com/stretchr/testify/require"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
	0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

func TestPRNG(t *testing.T) {

	t.Run("KeyedPRNG/Reset", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			_, err = Hb.Read(sum1)
			require.NoError(t, err)
		}

		Hb.Reset()

		_, err = Ha.Read(sum0)
		require.NoError(t, err)
		_, err = Hb.Read(sum1)
		require.NoError(t, err)

		require.Equal(t, sum0, sum1)
	})

	t.Run("KeyedPRNG/Key", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		key := prng.Key()
		require.Equal(t, testKey, key)

		key[0] ^= 0xff
		require.Equal(t, testKey, prng.Key(), "Key should return a copy")
	})

	t.Run("KeyedPRNG/DistinctKeys", func(t *testing.T) {
		Ha, err := sampling.NewKeyedPRNG([]byte{1})
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG([]byte{2})
		require.NoError(t, err)

		sum0 := make([]byte, 64)
		sum1 := make([]byte, 64)
		_, err = Ha.Read(sum0)
		require.NoError(t, err)
		_, err = Hb.Read(sum1)
		require.NoError(t, err)

		require.NotEqual(t, sum0, sum1)
	})

	t.Run("ThreadSafePRNG", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)
		sum := make([]byte, 32)
		n, err := prng.Read(sum)
		require.NoError(t, err)
		require.Equal(t, 32, n)
	})
}

func TestReadUint64N(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)

	for _, n := range []uint64{1, 2, 3, 7, 21, 1 << 40} {
		for i := 0; i < 256; i++ {
			v, err := sampling.ReadUint64N(prng, n)
			require.NoError(t, err)
			require.Less(t, v, n)
		}
	}

	_, err = sampling.ReadUint64N(prng, 0)
	require.Error(t, err)
}
