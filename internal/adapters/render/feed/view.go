package feed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lets-share-cli/internal/domain"
)

type RenderOptions struct {
	// Now anchors relative timestamps; zero falls back to absolute times.
	Now time.Time
	// Query, when set, is echoed in the header so the reader knows the
	// feed is filtered.
	Query string
}

func renderView(posts []domain.Post, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Share Feed"),
		s.header.Render(headerLine(len(posts), opts.Query)),
	}

	if len(posts) == 0 {
		lines = append(lines, s.empty.Render(emptyMessage(opts.Query)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, post := range posts {
		lines = append(lines, s.section.Render(renderPost(post, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(count int, query string) string {
	noun := "posts"
	if count == 1 {
		noun = "post"
	}
	if query == "" {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %s matching %q", count, noun, query)
}

func emptyMessage(query string) string {
	if query == "" {
		return "No posts yet. Be the first to share something."
	}
	return fmt.Sprintf("No posts match %q.", query)
}

func renderPost(post domain.Post, opts RenderOptions, s styles) string {
	byline := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.author.Render(authorName(post.Author)),
		" ",
		s.timestamp.Render(formatPostedAt(post.CreatedAt, opts.Now)),
	)

	if post.Edited() {
		byline += " " + s.edited.Render("(edited)")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		byline,
		s.description.Render(post.Description),
	)
}

func authorName(author domain.User) string {
	name := strings.TrimSpace(author.FullName)
	if name == "" {
		return "Unknown"
	}
	return name
}

func formatPostedAt(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return "unknown"
	}
	if now.IsZero() || createdAt.After(now) {
		return createdAt.Format("15:04 on 02 Jan 2006")
	}

	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		minutes := int(elapsed.Minutes())
		return fmt.Sprintf("%d %s ago", minutes, plural(minutes, "minute"))
	case elapsed < 24*time.Hour:
		hours := int(elapsed.Hours())
		return fmt.Sprintf("%d %s ago", hours, plural(hours, "hour"))
	case elapsed < 7*24*time.Hour:
		days := int(math.Floor(elapsed.Hours() / 24))
		return fmt.Sprintf("%d %s ago", days, plural(days, "day"))
	default:
		return createdAt.Format("02 Jan 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
