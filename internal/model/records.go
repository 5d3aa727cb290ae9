package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Aircraft is a fleet aircraft record.
type Aircraft struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AircraftID         string             `bson:"aircraftId" json:"aircraftId"`
	Manufacturer       string             `bson:"manufacturer" json:"manufacturer"`
	Model              string             `bson:"model" json:"model"`
	Variant            string             `bson:"variant,omitempty" json:"variant,omitempty"`
	SerialNumber       string             `bson:"serialNumber" json:"serialNumber"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"`
	YearOfManufacture  int                `bson:"yearOfManufacture" json:"yearOfManufacture"`
	MaxSeatingCapacity int                `bson:"maxSeatingCapacity" json:"maxSeatingCapacity"`
	AircraftType       string             `bson:"aircraftType" json:"aircraftType"`
	Status             string             `bson:"status" json:"status"`
	Location           string             `bson:"location,omitempty" json:"location,omitempty"`
	Owner              string             `bson:"owner,omitempty" json:"owner,omitempty"`
	Operator           string             `bson:"operator,omitempty" json:"operator,omitempty"`
	AcquisitionDate    *time.Time         `bson:"acquisitionDate,omitempty" json:"acquisitionDate,omitempty"`
	Notes              string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Party is a named counterparty on a purchase order.
type Party struct {
	Name          string `bson:"name" json:"name"`
	ContactPerson string `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`
	Email         string `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// AircraftDetails describes the aircraft being ordered.
type AircraftDetails struct {
	Manufacturer string  `bson:"manufacturer" json:"manufacturer"`
	Model        string  `bson:"model" json:"model"`
	Variant      string  `bson:"variant,omitempty" json:"variant,omitempty"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	UnitPrice    float64 `bson:"unitPrice" json:"unitPrice"`
	TotalPrice   float64 `bson:"totalPrice" json:"totalPrice"`
}

// PurchaseOrder is an aircraft purchase order record.
type PurchaseOrder struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PurchaseOrderID string             `bson:"purchaseOrderId" json:"purchaseOrderId"`
	PONumber        string             `bson:"poNumber" json:"poNumber"`
	Supplier        Party              `bson:"supplier" json:"supplier"`
	Buyer           Party              `bson:"buyer" json:"buyer"`
	AircraftDetails AircraftDetails    `bson:"aircraftDetails" json:"aircraftDetails"`
	OrderDate       time.Time          `bson:"orderDate" json:"orderDate"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	Status          string             `bson:"status" json:"status"`
	Priority        string             `bson:"priority,omitempty" json:"priority,omitempty"`
	Currency        string             `bson:"currency" json:"currency"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedBy       string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Airport identifies an airport on a flight log.
type Airport struct {
	Code     string `bson:"code" json:"code"`
	Name     string `bson:"name" json:"name"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
}

// CrewMember identifies one member of a flight crew.
type CrewMember struct {
	Name          string `bson:"name" json:"name"`
	LicenseNumber string `bson:"licenseNumber,omitempty" json:"licenseNumber,omitempty"`
}

// Crew holds the flight crew roster.
type Crew struct {
	Captain      CrewMember  `bson:"captain" json:"captain"`
	FirstOfficer *CrewMember `bson:"firstOfficer,omitempty" json:"firstOfficer,omitempty"`
}

// FlightLog is a completed or scheduled flight record.
type FlightLog struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FlightLogID        string             `bson:"flightLogId" json:"flightLogId"`
	FlightNumber       string             `bson:"flightNumber" json:"flightNumber"`
	AircraftID         string             `bson:"aircraftId" json:"aircraftId"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"`
	FlightDate         time.Time          `bson:"flightDate" json:"flightDate"`
	DepartureAirport   Airport            `bson:"departureAirport" json:"departureAirport"`
	ArrivalAirport     Airport            `bson:"arrivalAirport" json:"arrivalAirport"`
	Crew               Crew               `bson:"crew" json:"crew"`
	FlightType         string             `bson:"flightType" json:"flightType"`
	FlightStatus       string             `bson:"flightStatus" json:"flightStatus"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Requester identifies who raised an RFQ.
type Requester struct {
	Name       string `bson:"name" json:"name"`
	Department string `bson:"department,omitempty" json:"department,omitempty"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// RFQItem is one line item on an RFQ.
type RFQItem struct {
	ItemID         string  `bson:"itemId" json:"itemId"`
	ItemName       string  `bson:"itemName" json:"itemName"`
	Description    string  `bson:"description,omitempty" json:"description,omitempty"`
	Quantity       int     `bson:"quantity" json:"quantity"`
	Unit           string  `bson:"unit,omitempty" json:"unit,omitempty"`
	EstimatedValue float64 `bson:"estimatedValue,omitempty" json:"estimatedValue,omitempty"`
}

// RFQ is a request-for-quotation record.
type RFQ struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RFQID              string             `bson:"rfqId" json:"rfqId"`
	RFQNumber          string             `bson:"rfqNumber" json:"rfqNumber"`
	Title              string             `bson:"title" json:"title"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	Requester          Requester          `bson:"requester" json:"requester"`
	RFQType            string             `bson:"rfqType" json:"rfqType"`
	Category           string             `bson:"category,omitempty" json:"category,omitempty"`
	Priority           string             `bson:"priority,omitempty" json:"priority,omitempty"`
	Items              []RFQItem          `bson:"items,omitempty" json:"items,omitempty"`
	RFQStatus          string             `bson:"rfqStatus" json:"rfqStatus"`
	PublishDate        *time.Time         `bson:"publishDate,omitempty" json:"publishDate,omitempty"`
	SubmissionDeadline time.Time          `bson:"submissionDeadline" json:"submissionDeadline"`
	CreatedBy          string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// KnowledgeBaseEntry is a topic/content knowledge record.
type KnowledgeBaseEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Topic     string             `bson:"topic" json:"topic"`
	Content   string             `bson:"content" json:"content"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TopicEntry is a topic/content pair read from an auxiliary knowledge
// collection whose full schema is not known.
type TopicEntry struct {
	Topic   string `bson:"topic" json:"topic"`
	Content string `bson:"content" json:"content"`
}
