package templates

// defaultTemplates is the stock front-desk template set seeded by Init.
func defaultTemplates() []Template {
	return []Template{
		{
			ID:      "booking_confirmation",
			Subject: "Booking Confirmation - {hotel_name}",
			Body: `Dear {guest_name},

Thank you for choosing {hotel_name} for your upcoming stay in {location}. We are pleased to confirm your booking details:

Reservation Details:
- Check-in Date: {check_in_date}
- Check-out Date: {check_out_date}
- Room Type: {room_type}
- Number of Guests: {num_guests}
- Reservation Number: {reservation_number}

We look forward to welcoming you on {check_in_date}. Should you have any questions or special requests before your arrival, please don't hesitate to contact us.

Best regards,
{staff_name}
{hotel_name}
{hotel_contact}
`,
		},
		{
			ID:      "pre_arrival",
			Subject: "We're Looking Forward to Your Stay - {hotel_name}",
			Body: `Dear {guest_name},

Your stay at {hotel_name} begins on {check_in_date}, and we're getting everything ready for your arrival.

{personal_note}

If there's anything we can arrange for you ahead of time, just reply to this email.

Best regards,
{staff_name}
{hotel_name}
{hotel_contact}
`,
		},
		{
			ID:      "inquiry_response",
			Subject: "Response to Your Inquiry - {hotel_name}",
			Body: `Dear {guest_name},

Thank you for your interest in {hotel_name}. We appreciate you reaching out to us regarding {inquiry_subject}.

{custom_response}

If you have any further questions, please feel free to contact us at {hotel_contact}.

Best regards,
{staff_name}
{hotel_name}
`,
		},
		{
			ID:      "special_request",
			Subject: "Your Special Request - {hotel_name}",
			Body: `Dear {guest_name},

Thank you for your special request regarding your upcoming stay at {hotel_name}.

We have noted your request for {special_request} and will do our best to accommodate it. {custom_response}

If you have any additional requests or questions, please don't hesitate to let us know.

Best regards,
{staff_name}
{hotel_name}
{hotel_contact}
`,
		},
		{
			ID:      "checkout_reminder",
			Subject: "Checkout Reminder - {hotel_name}",
			Body: `Dear {guest_name},

We hope you've been enjoying your stay at {hotel_name}.

This is a friendly reminder that your checkout is scheduled for tomorrow, {check_out_date}, at {checkout_time}.

{late_checkout_policy}

Please ensure all room keys are returned to the front desk upon departure. If you have any questions or need assistance with your luggage, our staff will be happy to help.

It has been our pleasure to host you, and we wish you safe travels.

Best regards,
{staff_name}
{hotel_name}
{hotel_contact}
`,
		},
		{
			ID:      "feedback_request",
			Subject: "How was your stay? - {hotel_name}",
			Body: `Dear {guest_name},

We hope you enjoyed your recent stay at {hotel_name} from {check_in_date} to {check_out_date}.

Your feedback is extremely valuable to us, and we would appreciate if you could take a few minutes to share your experience. You can submit your review by {feedback_method}.

Thank you for choosing {hotel_name}. We look forward to welcoming you back in the future.

Best regards,
{staff_name}
{hotel_name}
{hotel_contact}
`,
		},
	}
}
