package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"educonnect/models"
	"educonnect/services"
)

var validate = validator.New()

type loginInput struct {
	Email string `validate:"required,email,max=256"`
}

type registerInput struct {
	Email     string `validate:"required,email,max=256"`
	Password  string `validate:"max=72"`
	FirstName string `validate:"max=256"`
	LastName  string `validate:"max=256"`
	UserType  string `validate:"required,oneof=student professor admin university homeowner"`
}

// validateInput turns validator failures into one flag-oriented error.
func validateInput(in any) error {
	err := validate.Struct(in)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, ", "))
}

// errAuthFailed carries the user-facing message of a failed AuthResponse.
var errAuthFailed = errors.New("authentication failed")

func authError(resp models.AuthResponse) error {
	if resp.Success {
		return nil
	}
	return fmt.Errorf("%w: %s", errAuthFailed, resp.Error)
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	var google bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in (mock: any email and password are accepted)",
		Example: `  educonnect login --email maria@uni.edu --password secret
  educonnect login --google`,
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if !google {
				if err := validateInput(loginInput{Email: email}); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			auth, release, err := a.openAuth(ctx)
			if err != nil {
				return err
			}
			defer release()

			var resp models.AuthResponse
			if google {
				resp = auth.LoginWithGoogle(ctx)
			} else {
				resp = auth.Login(ctx, email, password)
			}
			if err := authError(resp); err != nil {
				return err
			}
			printUser(cmd, auth.User())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (not checked)")
	cmd.Flags().BoolVar(&google, "google", false, "Sign in with Google")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var in models.User

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Example: `  educonnect register --email prof@uni.edu --name "Dr. Chen" --type professor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Email = strings.TrimSpace(in.Email)
			if err := validateInput(registerInput{
				Email:     in.Email,
				Password:  in.Password,
				FirstName: in.FirstName,
				LastName:  in.LastName,
				UserType:  in.UserType,
			}); err != nil {
				return err
			}
			if in.Name == "" {
				in.Name = strings.TrimSpace(in.FirstName + " " + in.LastName)
			}

			ctx := cmd.Context()
			auth, release, err := a.openAuth(ctx)
			if err != nil {
				return err
			}
			defer release()

			if err := authError(auth.Register(ctx, in)); err != nil {
				return err
			}
			printUser(cmd, auth.User())
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&in.Name, "name", "", "Display name (default: first and last name)")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&in.UserType, "type", models.UserTypeStudent,
		"Account type: student, professor, admin, university or homeowner")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			auth, release, err := a.openAuth(ctx)
			if err != nil {
				return err
			}
			defer release()

			auth.Logout(ctx)
			fmt.Fprintln(out(cmd), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, release, err := a.openAuth(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			if !auth.IsAuthenticated() {
				fmt.Fprintln(out(cmd), "Not signed in.")
				return nil
			}
			printUser(cmd, auth.User())
			return nil
		},
	}
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show which dashboard the signed-in user lands on",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, release, err := a.openAuth(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			w := out(cmd)
			kind, redirect := services.ResolveDashboard(auth)
			if kind == services.DashboardNone {
				a.logger.Debug("[dashboard] No session, redirecting to %s", redirect)
				fmt.Fprintf(w, "Not signed in. Redirecting to %s\n", redirect)
				return nil
			}
			fmt.Fprintf(w, "Welcome back, %s! Opening the %s dashboard.\n", auth.User().Name, kind)
			return nil
		},
	}
}

func printUser(cmd *cobra.Command, u *models.User) {
	if u == nil {
		return
	}
	w := out(cmd)
	fmt.Fprintf(w, "Signed in as %s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(w, "  type: %s  id: %s\n", u.UserType, u.ID)
	if u.Provider != "" {
		fmt.Fprintf(w, "  provider: %s\n", u.Provider)
	}
}
