// Package userdata resolves and initializes the per-user data directory
// where custom library snapshots, preferences, and exports live.
//
// Layout under ~/.evergreen/userdata (overridable via EVERGREEN_USERDATA):
//
//	library/activities.json   persisted custom activities
//	library/quiz.json         persisted custom quiz cards and songs
//	exports/                  rendered printable lists
//	preferences.yaml          user-wide display defaults
package userdata
