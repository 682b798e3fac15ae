package cst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The "with p" interpretation is tried first and wins whenever its
// continuation also succeeds, even though the "without p" interpretation
// would succeed too.
func TestAmbiguousOpt_WithPrefixWinsWhenContinuationSucceeds(t *testing.T) {
	p := Tag("a")
	cont := func(opt Option[string]) Parser[string] {
		return func(s Span) (Span, string, error) {
			out, _, err := Tag("b")(s)
			if err != nil {
				return s, "", err
			}
			if opt.Some {
				return out, "with:" + opt.Value, nil
			}
			return out, "without", nil
		}
	}

	out, v, err := AmbiguousOpt(p, cont)(NewSpan("ab"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, "with:a", v)
}

// When the continuation fails with p present, AmbiguousOpt rewinds to
// before p and retries the continuation as if p had been absent.
func TestAmbiguousOpt_RetriesWithoutPrefixOnContinuationFailure(t *testing.T) {
	p := Tag("a")
	cont := func(opt Option[string]) Parser[string] {
		return func(s Span) (Span, string, error) {
			// Only succeeds directly on "a", i.e. only when p was absent.
			out, _, err := Tag("a")(s)
			if err != nil {
				return s, "", err
			}
			if opt.Some {
				return out, "with:" + opt.Value, nil
			}
			return out, "without", nil
		}
	}

	out, v, err := AmbiguousOpt(p, cont)(NewSpan("a"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, "without", v)
}

// If p itself never matches, AmbiguousOpt falls straight through to the
// None continuation without attempting a retry.
func TestAmbiguousOpt_FallsThroughWhenPrefixNeverMatches(t *testing.T) {
	p := Tag("a")
	cont := func(opt Option[string]) Parser[string] {
		return func(s Span) (Span, string, error) {
			require.False(t, opt.Some)
			out, _, err := Tag("z")(s)
			if err != nil {
				return s, "", err
			}
			return out, "none-taken", nil
		}
	}

	out, v, err := AmbiguousOpt(p, cont)(NewSpan("z"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, "none-taken", v)
}
