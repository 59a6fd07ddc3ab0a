// Package content holds the static copy shown on the about page and the
// dashboard, with placeholder fallbacks for every image.
package content

import (
	"fmt"
	"net/url"
	"strings"
)

// Placeholder palette used for fallback images.
const (
	placeholderHost       = "https://placehold.co"
	placeholderBackground = "1a1a2e"
	placeholderForeground = "eaeaea"
)

// Image is a remote image with the URL to show if it fails to load.
type Image struct {
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Fallback string `json:"fallback"`
}

// Feature is one highlighted capability on the about page.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Step is one numbered item in the how-it-works list.
type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// About is the about page.
type About struct {
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline"`
	Hero     Image     `json:"hero"`
	Features []Feature `json:"features"`
	Steps    []Step    `json:"steps"`
	Workflow Image     `json:"workflow"`
	Contact  string    `json:"contact"`
}

// PlaceholderURL builds a placehold.co URL of the given size showing text.
func PlaceholderURL(width, height int, text string) string {
	return fmt.Sprintf("%s/%dx%d/%s/%s?text=%s",
		placeholderHost, width, height, placeholderBackground, placeholderForeground,
		url.QueryEscape(strings.TrimSpace(text)))
}

func unsplash(photo string, width, height int) string {
	return fmt.Sprintf("https://images.unsplash.com/%s?w=%d&h=%d&fit=crop&auto=format", photo, width, height)
}

// DashboardHero is the banner above the task list.
func DashboardHero() Image {
	return Image{
		Src:      unsplash("photo-1460925895917-afdab827c52f", 1200, 600),
		Alt:      "Task management",
		Fallback: PlaceholderURL(1200, 600, "Task Dashboard"),
	}
}

// EmptyState is the image shown when no tasks match the filter.
func EmptyState() Image {
	return Image{
		Src:      unsplash("photo-1551288049-bebda4e38f71", 600, 400),
		Alt:      "Empty tasks",
		Fallback: PlaceholderURL(600, 400, "No Tasks"),
	}
}

// AboutPage returns the about page copy.
func AboutPage() About {
	return About{
		Title:   "About TaskFlow",
		Tagline: "A minimalist task manager for getting today's work done.",
		Hero: Image{
			Src:      unsplash("photo-1552664730-d307ca884978", 1200, 600),
			Alt:      "Team planning session",
			Fallback: PlaceholderURL(1200, 600, "About TaskFlow"),
		},
		Features: []Feature{
			{Icon: "Zap", Title: "Lightning Fast", Description: "Add and manage tasks instantly with zero friction."},
			{Icon: "Filter", Title: "Smart Filters", Description: "Focus on what matters with All, Active, and Completed views."},
			{Icon: "BarChart3", Title: "Progress Tracking", Description: "See your completion rate update as you work."},
			{Icon: "Smartphone", Title: "Works Anywhere", Description: "Use the JSON API from a browser or the dashboard from a terminal."},
			{Icon: "Lock", Title: "Private by Default", Description: "Tasks live in memory and never leave the process."},
			{Icon: "Palette", Title: "Calm Interface", Description: "A quiet layout that keeps attention on the list."},
		},
		Steps: []Step{
			{Number: 1, Title: "Create a task", Description: "Type your task and press Enter."},
			{Number: 2, Title: "Mark progress", Description: "Toggle a task between active and completed."},
			{Number: 3, Title: "Filter & focus", Description: "Show only what you need right now."},
			{Number: 4, Title: "Track success", Description: "Watch the progress bar grow as you complete more tasks."},
		},
		Workflow: Image{
			Src:      unsplash("photo-1497366811353-6870744d04b2", 800, 600),
			Alt:      "Workspace",
			Fallback: PlaceholderURL(800, 600, "How It Works"),
		},
		Contact: "Have feedback? Send us a message.",
	}
}
