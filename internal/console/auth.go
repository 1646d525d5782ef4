package console

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/simctl/internal/session/app/service"
	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
)

func (a *app) loginCommand() *cobra.Command {
	var aadhaarFlag string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with Aadhaar number and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			prompt := newPrompter(a.term)

			aadhaarNo, err := prompt.textOrFlag(aadhaarFlag, "Aadhaar number")
			if err != nil {
				return err
			}
			password, err := prompt.password("Password")
			if err != nil {
				return err
			}

			result, err := a.deps.Backend.AuthService.MustLoad().Login(ctx, aadhaarNo, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			sessions := a.deps.Sessions.MustLoad()
			if err = sessions.Login(ctx, result.User, result.Token); err != nil {
				return fmt.Errorf("start session: %w", err)
			}

			state := sessions.State()
			_, err = fmt.Fprintf(a.term.Out, "Logged in as %s (%s), session expires in %s\n",
				result.User.Name, result.User.Role, remaining(state.RemainingSeconds))
			return err
		},
	}
	cmd.Flags().StringVar(&aadhaarFlag, "aadhaar", "", "Aadhaar number, prompted when empty")

	return cmd
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.deps.Sessions.MustLoad().Logout(cmd.Context(), service.ReasonExplicit)
			_, err := fmt.Fprintln(a.term.Out, "Logged out")
			return err
		},
	}
}

func (a *app) registerCommand() *cobra.Command {
	var registration backend.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new customer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := newPrompter(a.term)

			var err error
			fields := []struct {
				value *string
				label string
			}{
				{&registration.Name, "Name"},
				{&registration.Email, "Email"},
				{&registration.Phone, "Phone"},
				{&registration.AadhaarNo, "Aadhaar number"},
			}
			for _, field := range fields {
				if *field.value, err = prompt.textOrFlag(*field.value, field.label); err != nil {
					return err
				}
			}
			if registration.Password, err = prompt.password("Password"); err != nil {
				return err
			}

			if err = a.deps.Backend.AuthService.MustLoad().Register(cmd.Context(), registration); err != nil {
				return fmt.Errorf("register: %w", err)
			}

			_, err = fmt.Fprintln(a.term.Out, "Registration successful, log in with: simctl login")
			return err
		},
	}
	cmd.Flags().StringVar(&registration.Name, "name", "", "full name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "email address")
	cmd.Flags().StringVar(&registration.Phone, "phone", "", "contact phone number")
	cmd.Flags().StringVar(&registration.AadhaarNo, "aadhaar", "", "Aadhaar number")

	return cmd
}

func (a *app) changePasswordCommand() *cobra.Command {
	var change backend.PasswordChange
	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := newPrompter(a.term)

			var err error
			if change.AadhaarNo, err = prompt.textOrFlag(change.AadhaarNo, "Aadhaar number"); err != nil {
				return err
			}
			if change.OldPassword, err = prompt.password("Current password"); err != nil {
				return err
			}
			if change.NewPassword, err = prompt.password("New password"); err != nil {
				return err
			}

			if err = a.deps.Backend.AuthService.MustLoad().ChangePassword(cmd.Context(), change); err != nil {
				return fmt.Errorf("change password: %w", err)
			}

			_, err = fmt.Fprintln(a.term.Out, "Password changed")
			return err
		},
	}
	cmd.Flags().StringVar(&change.AadhaarNo, "aadhaar", "", "Aadhaar number, prompted when empty")

	return cmd
}
