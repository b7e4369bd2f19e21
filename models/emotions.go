package models

// AvailableEmotions is the catalog of emotion keywords a user can pick at
// registration. Volunteers are matched against these keywords server-side.
var AvailableEmotions = []string{
	"Happy",
	"Sad",
	"Angry",
	"Anxious",
	"Excited",
	"Calm",
	"Stressed",
	"Confident",
	"Tired",
	"Energetic",
}
