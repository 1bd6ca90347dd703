package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ft-interactive/shard/deploy"
	"github.com/ft-interactive/shard/git"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	prodStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dirStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// renderSummary produces the plan shown to the operator before confirmation.
func renderSummary(plan *deploy.Plan, branch string, remote *git.Remote) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Deployment plan"))
	b.WriteString("\n\n")

	env := valueStyle.Render(plan.Target.Environment())
	if plan.Target.IsProduction {
		env = prodStyle.Render("PRODUCTION")
	}

	row(&b, "Project", remote.Slug())
	row(&b, "Branch", branch)
	b.WriteString(labelStyle.Render("Environment"))
	b.WriteString(env)
	b.WriteString("\n")
	row(&b, "Bucket", plan.Target.Bucket)
	row(&b, "Prefix", plan.Target.KeyPrefix)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Directories (%d)", len(plan.Specs))))
	b.WriteString("\n")
	for _, spec := range plan.Specs {
		dir := spec.Dir
		if rel, err := filepath.Rel(plan.Root, dir); err == nil {
			dir = rel
		}
		b.WriteString("  ")
		b.WriteString(dirStyle.Render(dir))
		b.WriteString(valueStyle.Render(" -> s3://" + spec.Bucket + "/" + spec.Prefix))
		b.WriteString("\n")
	}

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
