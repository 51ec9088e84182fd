package main

import (
	"fmt"
	"os"

	"github.com/Shexter/langara-ics/internal/calendar"
	"github.com/Shexter/langara-ics/internal/schedule"
)

func main() {
	// Create a sample schedule
	sessions := []*schedule.Session{
		{
			Subject:     "CPSC",
			Course:      "1050",
			Section:     "001",
			Title:       "Introduction to Computer Science",
			SessionType: schedule.TypeLecture,
			DaysMask:    "-T-R---",
			TimeRange:   "1230-1420",
			StartDate:   "06-May-2024",
			EndDate:     "09-Aug-2024",
			Room:        "A136",
		},
		{
			Subject:     "CPSC",
			Course:      "1050",
			Section:     "001",
			Title:       "Introduction to Computer Science",
			SessionType: schedule.TypeExam,
			TimeRange:   "1300-1600",
			StartDate:   "12-Aug-2024",
			Room:        "G126",
		},
	}

	// Generate the .ics document
	icsContent := calendar.Generate(sessions, calendar.DefaultOptions())

	// Write to file (owner read/write only for security)
	filename := "preview-schedule.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
