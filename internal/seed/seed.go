// Package seed holds the starter community content and demo accounts
// the dashboard ships with. Forums are installed only into an empty
// store; a populated slot always wins.
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/suraksha-dev/suraksha/internal/storage"
	"github.com/suraksha-dev/suraksha/shared/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Forums returns the starter forums: safety tips, emergency response,
// community watch, legal rights and travel safety.
func Forums() []domain.Forum {
	return []domain.Forum{
		{
			Id:          "1",
			Name:        "Safety Tips & Self Defense",
			Description: "Share and learn essential safety tips, self-defense techniques, and daily precautions for women's safety",
			Tags:        domain.Tags{"Self-Defense", "Safety-Tips", "Personal-Security", "Awareness"},
			Rating:      4.8,
			Notes: []domain.Note{
				{
					Id:          "n1",
					Title:       "Essential Self-Defense Moves Every Woman Should Know",
					Content:     "1. Basic strikes and blocks\n2. How to escape common holds\n3. Using everyday items for self-defense\n4. Situational awareness tips",
					Author:      "Sarah",
					AuthorId:    "user1",
					Timestamp:   day(2024, time.March, 15),
					Replies:     []domain.Reply{},
					Likes:       45,
					Attachments: []domain.Attachment{},
					IsPinned:    true,
				},
			},
			Discussions: []domain.Discussion{},
		},
		{
			Id:          "2",
			Name:        "Emergency Response & Support",
			Description: "Learn about emergency protocols, share helpline numbers, and discuss quick response strategies in critical situations",
			Tags:        domain.Tags{"Emergency", "Helplines", "Quick-Response", "Support"},
			Rating:      4.9,
			Notes: []domain.Note{
				{
					Id:          "n2",
					Title:       "Emergency Contacts & Resources",
					Content:     "Important helpline numbers:\n- Women's Helpline: 1091\n- Police: 100\n- Ambulance: 102\n- Domestic Violence Helpline: 181",
					Author:      "Priya",
					AuthorId:    "user2",
					Timestamp:   day(2024, time.March, 14),
					Replies:     []domain.Reply{},
					Likes:       56,
					Attachments: []domain.Attachment{},
					IsPinned:    true,
				},
			},
			Discussions: []domain.Discussion{},
		},
		{
			Id:          "3",
			Name:        "Community Watch & Alerts",
			Description: "Stay updated about local safety concerns, share alerts, and coordinate community watch efforts",
			Tags:        domain.Tags{"Community", "Alerts", "Local-Safety", "Neighborhood-Watch"},
			Rating:      4.7,
			Notes:       []domain.Note{},
			Discussions: []domain.Discussion{
				{
					Id:          "d1",
					Content:     "Let's create a neighborhood watch group for evening walks and commute safety",
					Author:      "Rhea",
					AuthorId:    "user3",
					Timestamp:   day(2024, time.March, 13),
					Replies:     []domain.Reply{},
					Likes:       32,
					Attachments: []domain.Attachment{},
					IsPinned:    true,
				},
				{
					Id:       "d3",
					Content:  "URGENT: Non-working street lights on Shivaji Road near Central Park. This area is very dark and unsafe for women returning from evening shifts. @Municipal authorities, please address this immediately.",
					Author:   "Neha",
					AuthorId: "user6",

					Timestamp: day(2024, time.March, 16),
					Replies: []domain.Reply{
						{
							Id:          "r1",
							Content:     "I've noticed this too. It's been dark for over a week now. I've started taking longer routes just to avoid this stretch.",
							Author:      "Priya",
							AuthorId:    "user2",
							Timestamp:   day(2024, time.March, 16),
							Likes:       15,
							Attachments: []domain.Attachment{},
						},
						{
							Id:          "r2",
							Content:     "I've submitted a formal complaint to the municipal office. Reference number: MUN-2024-1234. Everyone please upvote this post for visibility.",
							Author:      "Anjali",
							AuthorId:    "user5",
							Timestamp:   day(2024, time.March, 16),
							Likes:       28,
							Attachments: []domain.Attachment{},
						},
						{
							Id:          "r3",
							Content:     "Municipal Officer here. Thank you for bringing this to our attention. Our team will inspect and repair the lights within 24 hours. Please keep us updated.",
							Author:      "Municipal Officer",
							AuthorId:    "official1",
							Timestamp:   day(2024, time.March, 17),
							Likes:       45,
							Attachments: []domain.Attachment{},
						},
					},
					Likes: 89,
					Attachments: []domain.Attachment{
						{
							Id:   "a1",
							Kind: domain.AttachmentImage,
							Url:  "/assets/profiles/dark-street.jpeg",
							Name: "Dark Street Photo",
							Size: 1024000,
						},
					},
					IsPinned: true,
				},
				{
					Id:        "d4",
					Content:   "Suspicious activity near City Mall - A group of men have been loitering near the back entrance during late hours. Please be cautious and avoid this area after 9 PM.",
					Author:    "Meera",
					AuthorId:  "user4",
					Timestamp: day(2024, time.March, 15),
					Replies: []domain.Reply{
						{
							Id:          "r4",
							Content:     "I've informed the mall security and local police. They've promised to increase patrolling in this area.",
							Author:      "Rhea",
							AuthorId:    "user3",
							Timestamp:   day(2024, time.March, 15),
							Likes:       35,
							Attachments: []domain.Attachment{},
						},
					},
					Likes:       56,
					Attachments: []domain.Attachment{},
				},
				{
					Id:        "d5",
					Content:   "New women's safety initiative: Free self-defense classes every Sunday at Community Center. Please indicate your interest to help us plan the batches.",
					Author:    "Sarah",
					AuthorId:  "user1",
					Timestamp: day(2024, time.March, 14),
					Replies: []domain.Reply{
						{
							Id:          "r5",
							Content:     "This is a great initiative! I'm a certified self-defense instructor and would love to volunteer as an additional trainer.",
							Author:      "Kavita",
							AuthorId:    "user7",
							Timestamp:   day(2024, time.March, 14),
							Likes:       42,
							Attachments: []domain.Attachment{},
						},
					},
					Likes:       75,
					Attachments: []domain.Attachment{},
					IsPinned:    true,
					IsPoll:      true,
					PollOptions: []domain.PollOption{
						{Id: "po1", Text: "Interested in morning batch (8 AM - 10 AM)", Votes: 45, Voters: []domain.UserId{}},
						{Id: "po2", Text: "Interested in evening batch (5 PM - 7 PM)", Votes: 62, Voters: []domain.UserId{}},
					},
				},
			},
		},
		{
			Id:          "4",
			Name:        "Legal Rights & Resources",
			Description: "Discuss women's legal rights, share information about support organizations, and access legal resources",
			Tags:        domain.Tags{"Legal", "Rights", "Support", "Resources"},
			Rating:      4.6,
			Notes: []domain.Note{
				{
					Id:          "n3",
					Title:       "Know Your Rights: Legal Protection for Women",
					Content:     "Important laws and rights every woman should know:\n1. Protection against workplace harassment\n2. Domestic violence protection\n3. Public safety rights\n4. Legal aid resources",
					Author:      "Meera",
					AuthorId:    "user4",
					Timestamp:   day(2024, time.March, 12),
					Replies:     []domain.Reply{},
					Likes:       41,
					Attachments: []domain.Attachment{},
					IsPinned:    true,
				},
			},
			Discussions: []domain.Discussion{},
		},
		{
			Id:          "5",
			Name:        "Travel Safety",
			Description: "Share tips and experiences about safe travel, commuting, and navigation in different situations",
			Tags:        domain.Tags{"Travel", "Commute", "Navigation", "Public-Transport"},
			Rating:      4.7,
			Notes:       []domain.Note{},
			Discussions: []domain.Discussion{
				{
					Id:          "d2",
					Content:     "What safety measures do you take while using ride-sharing services?",
					Author:      "Anjali",
					AuthorId:    "user5",
					Timestamp:   day(2024, time.March, 11),
					Replies:     []domain.Reply{},
					Likes:       28,
					Attachments: []domain.Attachment{},
					IsPoll:      true,
					PollOptions: []domain.PollOption{
						{Id: "po1", Text: "Share trip details with family/friends", Votes: 45, Voters: []domain.UserId{}},
						{Id: "po2", Text: "Verify driver and vehicle details", Votes: 38, Voters: []domain.UserId{}},
						{Id: "po3", Text: "Keep emergency contacts ready", Votes: 32, Voters: []domain.UserId{}},
						{Id: "po4", Text: "Use in-app safety features", Votes: 29, Voters: []domain.UserId{}},
					},
				},
			},
		},
	}
}

// demoPassword lets the bundled accounts log in out of the box.
const demoPassword = "suraksha-demo"

type demoUser struct {
	id    domain.UserId
	email string
	name  string
	admin bool
}

var demoUsers = []demoUser{
	{"user1", "sarah@suraksha.local", "Sarah", false},
	{"user2", "priya@suraksha.local", "Priya", false},
	{"user3", "rhea@suraksha.local", "Rhea", false},
	{"user4", "meera@suraksha.local", "Meera", false},
	{"user5", "anjali@suraksha.local", "Anjali", false},
	{"user6", "neha@suraksha.local", "Neha", false},
	{"user7", "kavita@suraksha.local", "Kavita", false},
	{"official1", "officer@suraksha.local", "Municipal Officer", true},
}

// Users registers the demo identities that authored the seed content.
func Users(registry *storage.Users) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	for _, du := range demoUsers {
		user := domain.User{
			Id:           du.id,
			Email:        du.email,
			Name:         du.name,
			Admin:        du.admin,
			PasswordHash: string(hash),
		}
		if err := registry.SaveUser(user); err != nil {
			return err
		}
	}
	return nil
}
