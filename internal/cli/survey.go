package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/apomind/apomind-cli/internal/api"
	"github.com/apomind/apomind-cli/internal/router"
)

// surveyView runs the onboarding course selection. A successful submission
// is what completes onboarding; afterwards the user lands on the home view.
// If the session is already complete the view lets the user re-submit a new
// selection, which leaves the completion flag alone.
func (a *App) surveyView(ctx context.Context) (string, error) {
	fmt.Fprintln(a.out, titleStyle.Render("Course selection"))

	courses, err := a.api.Courses(ctx)
	if err != nil {
		fmt.Fprintln(a.out, toastErrStyle.Render("Could not load the course catalog. Please try again later."))
		return router.PathIndex, nil
	}
	if len(courses) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No courses available yet."))
		return router.PathIndex, nil
	}

	for i, c := range courses {
		fmt.Fprintf(a.out, "%3d. %s\n", i+1, c.Name)
	}

	line, err := GetSimpleText(a.reader, "Pick your courses (numbers, comma-separated)", a.out)
	if err != nil {
		return "", err
	}

	selected := parseSelection(line, courses)
	if len(selected) == 0 {
		fmt.Fprintln(a.out, toastErrStyle.Render("Select at least one course."))
		return router.PathSurvey, nil
	}

	_, sess := a.ctrl.Snapshot()
	if err := a.api.SaveSelectedCourses(ctx, sess.ID, selected); err != nil {
		fmt.Fprintln(a.out, toastErrStyle.Render("Saving your selection failed. Please try again."))
		return router.PathSurvey, nil
	}

	if err := a.ctrl.CompleteOnboarding(ctx); err != nil {
		a.log.Warn(ctx, "completing onboarding", "err", err)
		return router.PathSurvey, nil
	}

	return router.PathHome, nil
}

// parseSelection maps "1,3, 5" onto course names, dropping anything out of
// range or repeated.
func parseSelection(line string, courses []api.Course) []string {
	seen := make(map[int]struct{})
	var selected []string

	for _, part := range strings.Split(line, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > len(courses) {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		selected = append(selected, courses[n-1].Name)
	}

	return selected
}
