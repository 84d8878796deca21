package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"explain/internal/skill"
)

var skillDir string

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install the code-explainer skill file for Claude Code",
	RunE:  runInstallSkill,
}

func init() {
	installSkillCmd.Flags().StringVar(&skillDir, "skill-dir", "", "Target directory for skill file (default: .claude/skills/code-explainer)")
}

func runInstallSkill(cmd *cobra.Command, args []string) error {
	target, err := skill.Install(skillDir)
	if err != nil {
		return err
	}
	printStatus("✓", "Installed skill to "+target, color.FgGreen)
	return nil
}
