package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_HappyPath(t *testing.T) {
	body := "Dear {guest_name}, your stay begins {check_in_date}."
	msg, err := Render("", body, map[string]string{
		"guest_name":    "Alice",
		"check_in_date": "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dear Alice, your stay begins 2024-06-01.", msg.Body)
	assert.Empty(t, msg.Subject)
	assert.NotContains(t, msg.Body, "{")
}

func TestRender_SubjectAndBody(t *testing.T) {
	msg, err := Render(
		"Booking Confirmation - {hotel_name}",
		"Dear {guest_name}, welcome to {hotel_name}.",
		map[string]string{
			"hotel_name":  "Seaview Inn",
			"guest_name":  "Bob",
			"guest_email": "bob@example.com",
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "Booking Confirmation - Seaview Inn", msg.Subject)
	assert.Equal(t, "Dear Bob, welcome to Seaview Inn.", msg.Body)
	assert.Equal(t, "bob@example.com", msg.To)
}

func TestRender_MissingPlaceholderNamesKey(t *testing.T) {
	body := "Dear {guest_name}, your stay begins {check_in_date}."
	_, err := Render("", body, map[string]string{"guest_name": "Alice"})
	require.Error(t, err)

	var missing *MissingPlaceholderError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"check_in_date"}, missing.Missing)
	assert.Contains(t, err.Error(), "check_in_date")
}

func TestRender_CollectsAllMissingAcrossSubjectAndBody(t *testing.T) {
	_, err := Render("Re: {topic}", "Hi {guest_name}, see {topic} and {detail}.", nil)
	var missing *MissingPlaceholderError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"topic", "guest_name", "detail"}, missing.Missing)
}

func TestRender_RepeatedPlaceholderGetsSameValue(t *testing.T) {
	msg, err := Render("", "{name}, {name}, {name}!", map[string]string{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Ada, Ada, Ada!", msg.Body)
}

func TestRender_LiteralBracesPassThrough(t *testing.T) {
	cases := map[string]string{
		"a { b":             "a { b",
		"a {1bad} b":        "a {1bad} b",
		"a {unclosed":       "a {unclosed",
		"{} empty":          "{} empty",
		"json: {\"k\": 1}":  "json: {\"k\": 1}",
		"mixed {ok} {no-d}": "mixed yes {no-d}",
	}
	for in, want := range cases {
		msg, err := Render("", in, map[string]string{"ok": "yes"})
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, msg.Body, "input %q", in)
	}
}

func TestRender_NoRecursiveSubstitution(t *testing.T) {
	msg, err := Render("", "Hello {a}", map[string]string{
		"a": "{b}",
		"b": "never",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello {b}", msg.Body)
}

func TestRender_Deterministic(t *testing.T) {
	body := "Dear {guest_name}, room {room_type}, from {check_in_date}."
	values := map[string]string{
		"guest_name":    "Alice",
		"room_type":     "Deluxe",
		"check_in_date": "2024-06-01",
	}
	first, err := Render("", body, values)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Render("", body, values)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_CaseSensitiveNames(t *testing.T) {
	_, err := Render("", "Hello {name} and {NAME}", map[string]string{"name": "x"})
	var missing *MissingPlaceholderError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"NAME"}, missing.Missing)
}

func TestPlaceholders_OrderAndRepeats(t *testing.T) {
	got := Placeholders("{b} then {a} then {b}")
	assert.Equal(t, []string{"b", "a", "b"}, got)
}

func TestFields_SortedUniqueAcrossSections(t *testing.T) {
	got := Fields("Subject {z} {a}", "Body {a} {m}")
	assert.Equal(t, []string{"a", "m", "z"}, got)
}

func TestFields_NoPlaceholders(t *testing.T) {
	assert.Empty(t, Fields("plain subject", "plain body"))
}
