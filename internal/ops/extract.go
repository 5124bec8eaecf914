package ops

import (
	"fmt"
	"regexp"
	"strings"

	"opsagent/internal/fault"
)

var emailToken = regexp.MustCompile(`[\w.-]+@[\w.-]+`)

// ExtractEmail writes the first email-address-shaped token found in
// email.txt. No token is an explicit failure.
func (l *Library) ExtractEmail() (string, error) {
	_, data, err := l.readInput(EmailFile)
	if err != nil {
		return "", err
	}

	sender := emailToken.FindString(string(data))
	if sender == "" {
		return "", fault.New(fault.MalformedInput, "No email found.")
	}

	out, err := l.writeOutput(EmailOutFile, []byte(sender))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Sender extracted to %s", out), nil
}

// ExtractCard reads the placeholder card payload, strips surrounding
// whitespace and interior spaces, and writes the compact number.
func (l *Library) ExtractCard() (string, error) {
	_, data, err := l.readInput(CardFile)
	if err != nil {
		return "", err
	}

	number := strings.ReplaceAll(strings.TrimSpace(string(data)), " ", "")

	out, err := l.writeOutput(CardOutFile, []byte(number))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Credit card number extracted to %s", out), nil
}
