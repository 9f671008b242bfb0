package types

import (
	"github.com/KirkDiggler/s3-model/internal/model"
)

// GetBucketVersioningRequest is the input of GetBucketVersioning
type GetBucketVersioningRequest struct {
	f getBucketVersioningRequestFields
}

type getBucketVersioningRequestFields struct {
	bucket              *string
	expectedBucketOwner *string
}

func (f getBucketVersioningRequestFields) clone() getBucketVersioningRequestFields {
	return getBucketVersioningRequestFields{
		bucket:              model.ClonePtr(f.bucket),
		expectedBucketOwner: model.ClonePtr(f.expectedBucketOwner),
	}
}

// GetBucketVersioningRequestBuilder stages the fields of a GetBucketVersioningRequest
type GetBucketVersioningRequestBuilder struct {
	f getBucketVersioningRequestFields
}

// NewGetBucketVersioningRequestBuilder returns a builder with every field absent
func NewGetBucketVersioningRequestBuilder() *GetBucketVersioningRequestBuilder {
	return &GetBucketVersioningRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *GetBucketVersioningRequestBuilder) WithBucket(v *string) *GetBucketVersioningRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *GetBucketVersioningRequestBuilder) WithExpectedBucketOwner(v *string) *GetBucketVersioningRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable GetBucketVersioningRequest holding a copy of the staged fields
func (b *GetBucketVersioningRequestBuilder) Build() *GetBucketVersioningRequest {
	return &GetBucketVersioningRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *GetBucketVersioningRequest) ToBuilder() *GetBucketVersioningRequestBuilder {
	return &GetBucketVersioningRequestBuilder{f: req.f.clone()}
}

func (req *GetBucketVersioningRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *GetBucketVersioningRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *GetBucketVersioningRequest) Equal(other *GetBucketVersioningRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *GetBucketVersioningRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("GetBucketVersioningRequest")
	h.String(req.f.bucket)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *GetBucketVersioningRequest) String() string {
	return model.NewPrinter("GetBucketVersioningRequest").
		Field("Bucket", req.f.bucket).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// GetBucketVersioningResponse is the output of GetBucketVersioning
type GetBucketVersioningResponse struct {
	f getBucketVersioningResponseFields
}

type getBucketVersioningResponseFields struct {
	status    *BucketVersioningStatus
	mfaDelete *MFADeleteStatus
}

func (f getBucketVersioningResponseFields) clone() getBucketVersioningResponseFields {
	return getBucketVersioningResponseFields{
		status:    model.ClonePtr(f.status),
		mfaDelete: model.ClonePtr(f.mfaDelete),
	}
}

// GetBucketVersioningResponseBuilder stages the fields of a GetBucketVersioningResponse
type GetBucketVersioningResponseBuilder struct {
	f getBucketVersioningResponseFields
}

// NewGetBucketVersioningResponseBuilder returns a builder with every field absent
func NewGetBucketVersioningResponseBuilder() *GetBucketVersioningResponseBuilder {
	return &GetBucketVersioningResponseBuilder{}
}

// WithStatus sets Status; nil clears it
func (b *GetBucketVersioningResponseBuilder) WithStatus(v *BucketVersioningStatus) *GetBucketVersioningResponseBuilder {
	b.f.status = model.ClonePtr(v)
	return b
}

// WithMFADelete sets MFADelete; nil clears it
func (b *GetBucketVersioningResponseBuilder) WithMFADelete(v *MFADeleteStatus) *GetBucketVersioningResponseBuilder {
	b.f.mfaDelete = model.ClonePtr(v)
	return b
}

// Build returns an immutable GetBucketVersioningResponse holding a copy of the staged fields
func (b *GetBucketVersioningResponseBuilder) Build() *GetBucketVersioningResponse {
	return &GetBucketVersioningResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *GetBucketVersioningResponse) ToBuilder() *GetBucketVersioningResponseBuilder {
	return &GetBucketVersioningResponseBuilder{f: resp.f.clone()}
}

// Status is absent for a bucket that never had versioning enabled
func (resp *GetBucketVersioningResponse) Status() (BucketVersioningStatus, bool) {
	return model.Get(resp.f.status)
}

// MFADelete reports whether MFA delete is enabled
func (resp *GetBucketVersioningResponse) MFADelete() (MFADeleteStatus, bool) {
	return model.Get(resp.f.mfaDelete)
}

// Equal reports whether resp and other hold the same field values
func (resp *GetBucketVersioningResponse) Equal(other *GetBucketVersioningResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualPtr(resp.f.status, other.f.status) &&
		model.EqualPtr(resp.f.mfaDelete, other.f.mfaDelete)
}

// Hash is consistent with Equal
func (resp *GetBucketVersioningResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("GetBucketVersioningResponse")
	model.HashEnum(h, resp.f.status)
	model.HashEnum(h, resp.f.mfaDelete)
	return h.Sum64()
}

func (resp *GetBucketVersioningResponse) String() string {
	return model.NewPrinter("GetBucketVersioningResponse").
		Field("Status", resp.f.status).
		Field("MFADelete", resp.f.mfaDelete).
		String()
}

// PutBucketVersioningRequest is the input of PutBucketVersioning
type PutBucketVersioningRequest struct {
	f putBucketVersioningRequestFields
}

type putBucketVersioningRequestFields struct {
	bucket                  *string
	checksumAlgorithm       *ChecksumAlgorithm
	contentMD5              *string
	mfa                     *string
	versioningConfiguration *VersioningConfiguration
	expectedBucketOwner     *string
}

func (f putBucketVersioningRequestFields) clone() putBucketVersioningRequestFields {
	return putBucketVersioningRequestFields{
		bucket:                  model.ClonePtr(f.bucket),
		checksumAlgorithm:       model.ClonePtr(f.checksumAlgorithm),
		contentMD5:              model.ClonePtr(f.contentMD5),
		mfa:                     model.ClonePtr(f.mfa),
		versioningConfiguration: f.versioningConfiguration,
		expectedBucketOwner:     model.ClonePtr(f.expectedBucketOwner),
	}
}

// PutBucketVersioningRequestBuilder stages the fields of a PutBucketVersioningRequest
type PutBucketVersioningRequestBuilder struct {
	f putBucketVersioningRequestFields
}

// NewPutBucketVersioningRequestBuilder returns a builder with every field absent
func NewPutBucketVersioningRequestBuilder() *PutBucketVersioningRequestBuilder {
	return &PutBucketVersioningRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *PutBucketVersioningRequestBuilder) WithBucket(v *string) *PutBucketVersioningRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithChecksumAlgorithm sets ChecksumAlgorithm; nil clears it
func (b *PutBucketVersioningRequestBuilder) WithChecksumAlgorithm(v *ChecksumAlgorithm) *PutBucketVersioningRequestBuilder {
	b.f.checksumAlgorithm = model.ClonePtr(v)
	return b
}

// WithContentMD5 sets ContentMD5; nil clears it
func (b *PutBucketVersioningRequestBuilder) WithContentMD5(v *string) *PutBucketVersioningRequestBuilder {
	b.f.contentMD5 = model.ClonePtr(v)
	return b
}

// WithMFA sets MFA; nil clears it
func (b *PutBucketVersioningRequestBuilder) WithMFA(v *string) *PutBucketVersioningRequestBuilder {
	b.f.mfa = model.ClonePtr(v)
	return b
}

// WithVersioningConfiguration sets VersioningConfiguration
func (b *PutBucketVersioningRequestBuilder) WithVersioningConfiguration(v *VersioningConfiguration) *PutBucketVersioningRequestBuilder {
	b.f.versioningConfiguration = v
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *PutBucketVersioningRequestBuilder) WithExpectedBucketOwner(v *string) *PutBucketVersioningRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable PutBucketVersioningRequest holding a copy of the staged fields
func (b *PutBucketVersioningRequestBuilder) Build() *PutBucketVersioningRequest {
	return &PutBucketVersioningRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *PutBucketVersioningRequest) ToBuilder() *PutBucketVersioningRequestBuilder {
	return &PutBucketVersioningRequestBuilder{f: req.f.clone()}
}

func (req *PutBucketVersioningRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

// ChecksumAlgorithm is the algorithm used to checksum the payload
func (req *PutBucketVersioningRequest) ChecksumAlgorithm() (ChecksumAlgorithm, bool) {
	return model.Get(req.f.checksumAlgorithm)
}

// ContentMD5 is the base64 MD5 of the request body
func (req *PutBucketVersioningRequest) ContentMD5() (string, bool) {
	return model.Get(req.f.contentMD5)
}

// MFA is the serial number and token of the MFA device, space separated
func (req *PutBucketVersioningRequest) MFA() (string, bool) {
	return model.Get(req.f.mfa)
}

// VersioningConfiguration holds the versioning state to apply
func (req *PutBucketVersioningRequest) VersioningConfiguration() (*VersioningConfiguration, bool) {
	return req.f.versioningConfiguration, req.f.versioningConfiguration != nil
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *PutBucketVersioningRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *PutBucketVersioningRequest) Equal(other *PutBucketVersioningRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.checksumAlgorithm, other.f.checksumAlgorithm) &&
		model.EqualPtr(req.f.contentMD5, other.f.contentMD5) &&
		model.EqualPtr(req.f.mfa, other.f.mfa) &&
		req.f.versioningConfiguration.Equal(other.f.versioningConfiguration) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *PutBucketVersioningRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("PutBucketVersioningRequest")
	h.String(req.f.bucket)
	model.HashEnum(h, req.f.checksumAlgorithm)
	h.String(req.f.contentMD5)
	h.String(req.f.mfa)
	h.Value(req.f.versioningConfiguration)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *PutBucketVersioningRequest) String() string {
	return model.NewPrinter("PutBucketVersioningRequest").
		Field("Bucket", req.f.bucket).
		Field("ChecksumAlgorithm", req.f.checksumAlgorithm).
		Field("ContentMD5", req.f.contentMD5).
		Field("MFA", req.f.mfa).
		Field("VersioningConfiguration", req.f.versioningConfiguration).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// PutBucketVersioningResponse is the output of PutBucketVersioning. It has no fields; every instance is interchangeable.
type PutBucketVersioningResponse struct{}

// NewPutBucketVersioningResponse returns the marker
func NewPutBucketVersioningResponse() PutBucketVersioningResponse {
	return PutBucketVersioningResponse{}
}

// Equal always reports true
func (PutBucketVersioningResponse) Equal(PutBucketVersioningResponse) bool {
	return true
}

// Hash returns the same value for every instance
func (PutBucketVersioningResponse) Hash() uint64 {
	return model.NewHasher("PutBucketVersioningResponse").Sum64()
}

func (PutBucketVersioningResponse) String() string {
	return "PutBucketVersioningResponse()"
}
