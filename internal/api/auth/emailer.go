package auth

import (
	"fmt"
	"net/smtp"
	"os"

	"guide-app/config"
)

func sendMail(to, subject, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("SMTP error:", err)
	}
	return err
}

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", config.APP_URL, token)
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)
	return sendMail(to, "Verify Your Account", body)
}

// SendEbookEmail delivers the download link after a purchase is
// associated with the account.
func SendEbookEmail(to string, packageName string, ebookURL string) error {
	body := fmt.Sprintf(
		"Thanks for getting the %s!\n\n"+
			"Download the latest version of the ebook here:\n\n%s\n\n"+
			"To read the web version, start with the Preface: %s/preface\n",
		packageName, ebookURL, config.APP_URL)
	return sendMail(to, "The GraphQL Guide", body)
}
