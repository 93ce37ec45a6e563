package main

import (
	"github.com/spf13/cobra"

	"portvr/painel/pkg/cli"
	"portvr/painel/pkg/session"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the user profile",
		Long: `Show or change the profile shown in the dashboard header.

Changes are saved to the session storage immediately.

Examples:
  portvr profile show
  portvr profile set --name "Maria Souza" --email maria@portvr.com`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := a.openSession(cmd.Context())
			if err != nil {
				return cli.NewCommandError("profile show", err)
			}
			defer closeFn()
			return a.print(cmd, profileView(sess.Profile()))
		},
	}

	var name, email, bio, avatar string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var update session.ProfileUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.Name = &name
			}
			if flags.Changed("email") {
				update.Email = &email
			}
			if flags.Changed("bio") {
				update.Bio = &bio
			}
			if flags.Changed("avatar") {
				update.Avatar = &avatar
			}
			if update.Empty() {
				return cli.NewConfigError("profile", "nothing to change: use --name, --email, --bio or --avatar")
			}

			sess, closeFn, err := a.openSession(cmd.Context())
			if err != nil {
				return cli.NewCommandError("profile set", err)
			}
			defer closeFn()

			p, err := sess.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return cli.NewCommandError("profile set", err)
			}
			return a.print(cmd, profileView(p))
		},
	}
	setCmd.Flags().StringVar(&name, "name", "", "display name")
	setCmd.Flags().StringVar(&email, "email", "", "e-mail address")
	setCmd.Flags().StringVar(&bio, "bio", "", "short description")
	setCmd.Flags().StringVar(&avatar, "avatar", "", "avatar image URL")

	cmd.AddCommand(showCmd, setCmd)
	return cmd
}

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the dashboard theme",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show whether dark mode is on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := a.openSession(cmd.Context())
			if err != nil {
				return cli.NewCommandError("theme show", err)
			}
			defer closeFn()
			return a.print(cmd, themeView{DarkMode: sess.DarkMode()})
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := a.openSession(cmd.Context())
			if err != nil {
				return cli.NewCommandError("theme toggle", err)
			}
			defer closeFn()

			on, err := sess.ToggleDarkMode(cmd.Context())
			if err != nil {
				return cli.NewCommandError("theme toggle", err)
			}
			return a.print(cmd, themeView{DarkMode: on})
		},
	}

	setCmd := &cobra.Command{
		Use:       "set {dark|light}",
		Short:     "Select dark or light mode",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := a.openSession(cmd.Context())
			if err != nil {
				return cli.NewCommandError("theme set", err)
			}
			defer closeFn()

			on := args[0] == "dark"
			if err := sess.SetDarkMode(cmd.Context(), on); err != nil {
				return cli.NewCommandError("theme set", err)
			}
			return a.print(cmd, themeView{DarkMode: on})
		},
	}

	cmd.AddCommand(showCmd, toggleCmd, setCmd)
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored profile",
		Long: `Clear the stored profile. The next session starts with the default
administrator profile. The theme preference is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := a.openSession(cmd.Context())
			if err != nil {
				return cli.NewCommandError("logout", err)
			}
			defer closeFn()

			if err := sess.Logout(cmd.Context()); err != nil {
				return cli.NewCommandError("logout", err)
			}
			a.logger.Info("user logged out")
			return a.print(cmd, "logged out")
		},
	}
}

type profileView session.Profile

func (p profileView) Headers() []string { return nil }

func (p profileView) Rows() [][]string {
	return [][]string{
		{"Name:", p.Name},
		{"Email:", p.Email},
		{"Bio:", p.Bio},
		{"Avatar:", p.Avatar},
	}
}

type themeView struct {
	DarkMode bool `json:"darkMode"`
}

func (t themeView) String() string {
	if t.DarkMode {
		return "dark mode: on"
	}
	return "dark mode: off"
}
