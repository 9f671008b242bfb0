package types

import (
	"github.com/KirkDiggler/s3-model/internal/model"
)

// GetObjectTaggingRequest is the input of GetObjectTagging
type GetObjectTaggingRequest struct {
	f getObjectTaggingRequestFields
}

type getObjectTaggingRequestFields struct {
	bucket              *string
	key                 *string
	versionID           *string
	expectedBucketOwner *string
	requestPayer        *RequestPayer
}

func (f getObjectTaggingRequestFields) clone() getObjectTaggingRequestFields {
	return getObjectTaggingRequestFields{
		bucket:              model.ClonePtr(f.bucket),
		key:                 model.ClonePtr(f.key),
		versionID:           model.ClonePtr(f.versionID),
		expectedBucketOwner: model.ClonePtr(f.expectedBucketOwner),
		requestPayer:        model.ClonePtr(f.requestPayer),
	}
}

// GetObjectTaggingRequestBuilder stages the fields of a GetObjectTaggingRequest
type GetObjectTaggingRequestBuilder struct {
	f getObjectTaggingRequestFields
}

// NewGetObjectTaggingRequestBuilder returns a builder with every field absent
func NewGetObjectTaggingRequestBuilder() *GetObjectTaggingRequestBuilder {
	return &GetObjectTaggingRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *GetObjectTaggingRequestBuilder) WithBucket(v *string) *GetObjectTaggingRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithKey sets Key; nil clears it
func (b *GetObjectTaggingRequestBuilder) WithKey(v *string) *GetObjectTaggingRequestBuilder {
	b.f.key = model.ClonePtr(v)
	return b
}

// WithVersionID sets VersionID; nil clears it
func (b *GetObjectTaggingRequestBuilder) WithVersionID(v *string) *GetObjectTaggingRequestBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *GetObjectTaggingRequestBuilder) WithExpectedBucketOwner(v *string) *GetObjectTaggingRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// WithRequestPayer sets RequestPayer; nil clears it
func (b *GetObjectTaggingRequestBuilder) WithRequestPayer(v *RequestPayer) *GetObjectTaggingRequestBuilder {
	b.f.requestPayer = model.ClonePtr(v)
	return b
}

// Build returns an immutable GetObjectTaggingRequest holding a copy of the staged fields
func (b *GetObjectTaggingRequestBuilder) Build() *GetObjectTaggingRequest {
	return &GetObjectTaggingRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *GetObjectTaggingRequest) ToBuilder() *GetObjectTaggingRequestBuilder {
	return &GetObjectTaggingRequestBuilder{f: req.f.clone()}
}

func (req *GetObjectTaggingRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

func (req *GetObjectTaggingRequest) Key() (string, bool) {
	return model.Get(req.f.key)
}

// VersionID is the object version
func (req *GetObjectTaggingRequest) VersionID() (string, bool) {
	return model.Get(req.f.versionID)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *GetObjectTaggingRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// RequestPayer confirms the requester pays for a Requester Pays bucket
func (req *GetObjectTaggingRequest) RequestPayer() (RequestPayer, bool) {
	return model.Get(req.f.requestPayer)
}

// Equal reports whether req and other hold the same field values
func (req *GetObjectTaggingRequest) Equal(other *GetObjectTaggingRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.key, other.f.key) &&
		model.EqualPtr(req.f.versionID, other.f.versionID) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner) &&
		model.EqualPtr(req.f.requestPayer, other.f.requestPayer)
}

// Hash is consistent with Equal
func (req *GetObjectTaggingRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("GetObjectTaggingRequest")
	h.String(req.f.bucket)
	h.String(req.f.key)
	h.String(req.f.versionID)
	h.String(req.f.expectedBucketOwner)
	model.HashEnum(h, req.f.requestPayer)
	return h.Sum64()
}

func (req *GetObjectTaggingRequest) String() string {
	return model.NewPrinter("GetObjectTaggingRequest").
		Field("Bucket", req.f.bucket).
		Field("Key", req.f.key).
		Field("VersionID", req.f.versionID).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		Field("RequestPayer", req.f.requestPayer).
		String()
}

// GetObjectTaggingResponse is the output of GetObjectTagging
type GetObjectTaggingResponse struct {
	f getObjectTaggingResponseFields
}

type getObjectTaggingResponseFields struct {
	versionID *string
	tagSet    []*Tag
}

func (f getObjectTaggingResponseFields) clone() getObjectTaggingResponseFields {
	return getObjectTaggingResponseFields{
		versionID: model.ClonePtr(f.versionID),
		tagSet:    model.CloneSlice(f.tagSet),
	}
}

// GetObjectTaggingResponseBuilder stages the fields of a GetObjectTaggingResponse
type GetObjectTaggingResponseBuilder struct {
	f getObjectTaggingResponseFields
}

// NewGetObjectTaggingResponseBuilder returns a builder with every field absent
func NewGetObjectTaggingResponseBuilder() *GetObjectTaggingResponseBuilder {
	return &GetObjectTaggingResponseBuilder{}
}

// WithVersionID sets VersionID; nil clears it
func (b *GetObjectTaggingResponseBuilder) WithVersionID(v *string) *GetObjectTaggingResponseBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithTagSet sets TagSet. nil leaves it absent; an empty slice is present and empty.
func (b *GetObjectTaggingResponseBuilder) WithTagSet(v []*Tag) *GetObjectTaggingResponseBuilder {
	b.f.tagSet = model.CloneSlice(v)
	return b
}

// Build returns an immutable GetObjectTaggingResponse holding a copy of the staged fields
func (b *GetObjectTaggingResponseBuilder) Build() *GetObjectTaggingResponse {
	return &GetObjectTaggingResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *GetObjectTaggingResponse) ToBuilder() *GetObjectTaggingResponseBuilder {
	return &GetObjectTaggingResponseBuilder{f: resp.f.clone()}
}

// VersionID is the object version
func (resp *GetObjectTaggingResponse) VersionID() (string, bool) {
	return model.Get(resp.f.versionID)
}

// TagSet is present and empty for an object without tags
func (resp *GetObjectTaggingResponse) TagSet() ([]*Tag, bool) {
	return model.CloneSlice(resp.f.tagSet), resp.f.tagSet != nil
}

// Equal reports whether resp and other hold the same field values
func (resp *GetObjectTaggingResponse) Equal(other *GetObjectTaggingResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualPtr(resp.f.versionID, other.f.versionID) &&
		model.EqualValues(resp.f.tagSet, other.f.tagSet)
}

// Hash is consistent with Equal
func (resp *GetObjectTaggingResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("GetObjectTaggingResponse")
	h.String(resp.f.versionID)
	model.HashValues(h, resp.f.tagSet)
	return h.Sum64()
}

func (resp *GetObjectTaggingResponse) String() string {
	return model.NewPrinter("GetObjectTaggingResponse").
		Field("VersionID", resp.f.versionID).
		Field("TagSet", resp.f.tagSet).
		String()
}

// PutObjectTaggingRequest is the input of PutObjectTagging
type PutObjectTaggingRequest struct {
	f putObjectTaggingRequestFields
}

type putObjectTaggingRequestFields struct {
	bucket              *string
	key                 *string
	versionID           *string
	contentMD5          *string
	checksumAlgorithm   *ChecksumAlgorithm
	tagging             *Tagging
	expectedBucketOwner *string
	requestPayer        *RequestPayer
}

func (f putObjectTaggingRequestFields) clone() putObjectTaggingRequestFields {
	return putObjectTaggingRequestFields{
		bucket:              model.ClonePtr(f.bucket),
		key:                 model.ClonePtr(f.key),
		versionID:           model.ClonePtr(f.versionID),
		contentMD5:          model.ClonePtr(f.contentMD5),
		checksumAlgorithm:   model.ClonePtr(f.checksumAlgorithm),
		tagging:             f.tagging,
		expectedBucketOwner: model.ClonePtr(f.expectedBucketOwner),
		requestPayer:        model.ClonePtr(f.requestPayer),
	}
}

// PutObjectTaggingRequestBuilder stages the fields of a PutObjectTaggingRequest
type PutObjectTaggingRequestBuilder struct {
	f putObjectTaggingRequestFields
}

// NewPutObjectTaggingRequestBuilder returns a builder with every field absent
func NewPutObjectTaggingRequestBuilder() *PutObjectTaggingRequestBuilder {
	return &PutObjectTaggingRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *PutObjectTaggingRequestBuilder) WithBucket(v *string) *PutObjectTaggingRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithKey sets Key; nil clears it
func (b *PutObjectTaggingRequestBuilder) WithKey(v *string) *PutObjectTaggingRequestBuilder {
	b.f.key = model.ClonePtr(v)
	return b
}

// WithVersionID sets VersionID; nil clears it
func (b *PutObjectTaggingRequestBuilder) WithVersionID(v *string) *PutObjectTaggingRequestBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithContentMD5 sets ContentMD5; nil clears it
func (b *PutObjectTaggingRequestBuilder) WithContentMD5(v *string) *PutObjectTaggingRequestBuilder {
	b.f.contentMD5 = model.ClonePtr(v)
	return b
}

// WithChecksumAlgorithm sets ChecksumAlgorithm; nil clears it
func (b *PutObjectTaggingRequestBuilder) WithChecksumAlgorithm(v *ChecksumAlgorithm) *PutObjectTaggingRequestBuilder {
	b.f.checksumAlgorithm = model.ClonePtr(v)
	return b
}

// WithTagging sets Tagging
func (b *PutObjectTaggingRequestBuilder) WithTagging(v *Tagging) *PutObjectTaggingRequestBuilder {
	b.f.tagging = v
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *PutObjectTaggingRequestBuilder) WithExpectedBucketOwner(v *string) *PutObjectTaggingRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// WithRequestPayer sets RequestPayer; nil clears it
func (b *PutObjectTaggingRequestBuilder) WithRequestPayer(v *RequestPayer) *PutObjectTaggingRequestBuilder {
	b.f.requestPayer = model.ClonePtr(v)
	return b
}

// Build returns an immutable PutObjectTaggingRequest holding a copy of the staged fields
func (b *PutObjectTaggingRequestBuilder) Build() *PutObjectTaggingRequest {
	return &PutObjectTaggingRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *PutObjectTaggingRequest) ToBuilder() *PutObjectTaggingRequestBuilder {
	return &PutObjectTaggingRequestBuilder{f: req.f.clone()}
}

func (req *PutObjectTaggingRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

func (req *PutObjectTaggingRequest) Key() (string, bool) {
	return model.Get(req.f.key)
}

// VersionID is the object version
func (req *PutObjectTaggingRequest) VersionID() (string, bool) {
	return model.Get(req.f.versionID)
}

// ContentMD5 is the base64 MD5 of the request body
func (req *PutObjectTaggingRequest) ContentMD5() (string, bool) {
	return model.Get(req.f.contentMD5)
}

// ChecksumAlgorithm is the algorithm used to checksum the payload
func (req *PutObjectTaggingRequest) ChecksumAlgorithm() (ChecksumAlgorithm, bool) {
	return model.Get(req.f.checksumAlgorithm)
}

// Tagging is the tag set to store
func (req *PutObjectTaggingRequest) Tagging() (*Tagging, bool) {
	return req.f.tagging, req.f.tagging != nil
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *PutObjectTaggingRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// RequestPayer confirms the requester pays for a Requester Pays bucket
func (req *PutObjectTaggingRequest) RequestPayer() (RequestPayer, bool) {
	return model.Get(req.f.requestPayer)
}

// Equal reports whether req and other hold the same field values
func (req *PutObjectTaggingRequest) Equal(other *PutObjectTaggingRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.key, other.f.key) &&
		model.EqualPtr(req.f.versionID, other.f.versionID) &&
		model.EqualPtr(req.f.contentMD5, other.f.contentMD5) &&
		model.EqualPtr(req.f.checksumAlgorithm, other.f.checksumAlgorithm) &&
		req.f.tagging.Equal(other.f.tagging) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner) &&
		model.EqualPtr(req.f.requestPayer, other.f.requestPayer)
}

// Hash is consistent with Equal
func (req *PutObjectTaggingRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("PutObjectTaggingRequest")
	h.String(req.f.bucket)
	h.String(req.f.key)
	h.String(req.f.versionID)
	h.String(req.f.contentMD5)
	model.HashEnum(h, req.f.checksumAlgorithm)
	h.Value(req.f.tagging)
	h.String(req.f.expectedBucketOwner)
	model.HashEnum(h, req.f.requestPayer)
	return h.Sum64()
}

func (req *PutObjectTaggingRequest) String() string {
	return model.NewPrinter("PutObjectTaggingRequest").
		Field("Bucket", req.f.bucket).
		Field("Key", req.f.key).
		Field("VersionID", req.f.versionID).
		Field("ContentMD5", req.f.contentMD5).
		Field("ChecksumAlgorithm", req.f.checksumAlgorithm).
		Field("Tagging", req.f.tagging).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		Field("RequestPayer", req.f.requestPayer).
		String()
}

// PutObjectTaggingResponse is the output of PutObjectTagging
type PutObjectTaggingResponse struct {
	f putObjectTaggingResponseFields
}

type putObjectTaggingResponseFields struct {
	versionID *string
}

func (f putObjectTaggingResponseFields) clone() putObjectTaggingResponseFields {
	return putObjectTaggingResponseFields{
		versionID: model.ClonePtr(f.versionID),
	}
}

// PutObjectTaggingResponseBuilder stages the fields of a PutObjectTaggingResponse
type PutObjectTaggingResponseBuilder struct {
	f putObjectTaggingResponseFields
}

// NewPutObjectTaggingResponseBuilder returns a builder with every field absent
func NewPutObjectTaggingResponseBuilder() *PutObjectTaggingResponseBuilder {
	return &PutObjectTaggingResponseBuilder{}
}

// WithVersionID sets VersionID; nil clears it
func (b *PutObjectTaggingResponseBuilder) WithVersionID(v *string) *PutObjectTaggingResponseBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// Build returns an immutable PutObjectTaggingResponse holding a copy of the staged fields
func (b *PutObjectTaggingResponseBuilder) Build() *PutObjectTaggingResponse {
	return &PutObjectTaggingResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *PutObjectTaggingResponse) ToBuilder() *PutObjectTaggingResponseBuilder {
	return &PutObjectTaggingResponseBuilder{f: resp.f.clone()}
}

// VersionID is the object version
func (resp *PutObjectTaggingResponse) VersionID() (string, bool) {
	return model.Get(resp.f.versionID)
}

// Equal reports whether resp and other hold the same field values
func (resp *PutObjectTaggingResponse) Equal(other *PutObjectTaggingResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualPtr(resp.f.versionID, other.f.versionID)
}

// Hash is consistent with Equal
func (resp *PutObjectTaggingResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("PutObjectTaggingResponse")
	h.String(resp.f.versionID)
	return h.Sum64()
}

func (resp *PutObjectTaggingResponse) String() string {
	return model.NewPrinter("PutObjectTaggingResponse").
		Field("VersionID", resp.f.versionID).
		String()
}

// PutBucketTaggingRequest is the input of PutBucketTagging
type PutBucketTaggingRequest struct {
	f putBucketTaggingRequestFields
}

type putBucketTaggingRequestFields struct {
	bucket              *string
	contentMD5          *string
	checksumAlgorithm   *ChecksumAlgorithm
	tagging             *Tagging
	expectedBucketOwner *string
}

func (f putBucketTaggingRequestFields) clone() putBucketTaggingRequestFields {
	return putBucketTaggingRequestFields{
		bucket:              model.ClonePtr(f.bucket),
		contentMD5:          model.ClonePtr(f.contentMD5),
		checksumAlgorithm:   model.ClonePtr(f.checksumAlgorithm),
		tagging:             f.tagging,
		expectedBucketOwner: model.ClonePtr(f.expectedBucketOwner),
	}
}

// PutBucketTaggingRequestBuilder stages the fields of a PutBucketTaggingRequest
type PutBucketTaggingRequestBuilder struct {
	f putBucketTaggingRequestFields
}

// NewPutBucketTaggingRequestBuilder returns a builder with every field absent
func NewPutBucketTaggingRequestBuilder() *PutBucketTaggingRequestBuilder {
	return &PutBucketTaggingRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *PutBucketTaggingRequestBuilder) WithBucket(v *string) *PutBucketTaggingRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithContentMD5 sets ContentMD5; nil clears it
func (b *PutBucketTaggingRequestBuilder) WithContentMD5(v *string) *PutBucketTaggingRequestBuilder {
	b.f.contentMD5 = model.ClonePtr(v)
	return b
}

// WithChecksumAlgorithm sets ChecksumAlgorithm; nil clears it
func (b *PutBucketTaggingRequestBuilder) WithChecksumAlgorithm(v *ChecksumAlgorithm) *PutBucketTaggingRequestBuilder {
	b.f.checksumAlgorithm = model.ClonePtr(v)
	return b
}

// WithTagging sets Tagging
func (b *PutBucketTaggingRequestBuilder) WithTagging(v *Tagging) *PutBucketTaggingRequestBuilder {
	b.f.tagging = v
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *PutBucketTaggingRequestBuilder) WithExpectedBucketOwner(v *string) *PutBucketTaggingRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable PutBucketTaggingRequest holding a copy of the staged fields
func (b *PutBucketTaggingRequestBuilder) Build() *PutBucketTaggingRequest {
	return &PutBucketTaggingRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *PutBucketTaggingRequest) ToBuilder() *PutBucketTaggingRequestBuilder {
	return &PutBucketTaggingRequestBuilder{f: req.f.clone()}
}

func (req *PutBucketTaggingRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

// ContentMD5 is the base64 MD5 of the request body
func (req *PutBucketTaggingRequest) ContentMD5() (string, bool) {
	return model.Get(req.f.contentMD5)
}

// ChecksumAlgorithm is the algorithm used to checksum the payload
func (req *PutBucketTaggingRequest) ChecksumAlgorithm() (ChecksumAlgorithm, bool) {
	return model.Get(req.f.checksumAlgorithm)
}

// Tagging is the tag set to store
func (req *PutBucketTaggingRequest) Tagging() (*Tagging, bool) {
	return req.f.tagging, req.f.tagging != nil
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *PutBucketTaggingRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *PutBucketTaggingRequest) Equal(other *PutBucketTaggingRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.contentMD5, other.f.contentMD5) &&
		model.EqualPtr(req.f.checksumAlgorithm, other.f.checksumAlgorithm) &&
		req.f.tagging.Equal(other.f.tagging) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *PutBucketTaggingRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("PutBucketTaggingRequest")
	h.String(req.f.bucket)
	h.String(req.f.contentMD5)
	model.HashEnum(h, req.f.checksumAlgorithm)
	h.Value(req.f.tagging)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *PutBucketTaggingRequest) String() string {
	return model.NewPrinter("PutBucketTaggingRequest").
		Field("Bucket", req.f.bucket).
		Field("ContentMD5", req.f.contentMD5).
		Field("ChecksumAlgorithm", req.f.checksumAlgorithm).
		Field("Tagging", req.f.tagging).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// PutBucketTaggingResponse is the output of PutBucketTagging. It has no fields; every instance is interchangeable.
type PutBucketTaggingResponse struct{}

// NewPutBucketTaggingResponse returns the marker
func NewPutBucketTaggingResponse() PutBucketTaggingResponse {
	return PutBucketTaggingResponse{}
}

// Equal always reports true
func (PutBucketTaggingResponse) Equal(PutBucketTaggingResponse) bool {
	return true
}

// Hash returns the same value for every instance
func (PutBucketTaggingResponse) Hash() uint64 {
	return model.NewHasher("PutBucketTaggingResponse").Sum64()
}

func (PutBucketTaggingResponse) String() string {
	return "PutBucketTaggingResponse()"
}

// DeleteBucketTaggingRequest is the input of DeleteBucketTagging
type DeleteBucketTaggingRequest struct {
	f deleteBucketTaggingRequestFields
}

type deleteBucketTaggingRequestFields struct {
	bucket              *string
	expectedBucketOwner *string
}

func (f deleteBucketTaggingRequestFields) clone() deleteBucketTaggingRequestFields {
	return deleteBucketTaggingRequestFields{
		bucket:              model.ClonePtr(f.bucket),
		expectedBucketOwner: model.ClonePtr(f.expectedBucketOwner),
	}
}

// DeleteBucketTaggingRequestBuilder stages the fields of a DeleteBucketTaggingRequest
type DeleteBucketTaggingRequestBuilder struct {
	f deleteBucketTaggingRequestFields
}

// NewDeleteBucketTaggingRequestBuilder returns a builder with every field absent
func NewDeleteBucketTaggingRequestBuilder() *DeleteBucketTaggingRequestBuilder {
	return &DeleteBucketTaggingRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *DeleteBucketTaggingRequestBuilder) WithBucket(v *string) *DeleteBucketTaggingRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *DeleteBucketTaggingRequestBuilder) WithExpectedBucketOwner(v *string) *DeleteBucketTaggingRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable DeleteBucketTaggingRequest holding a copy of the staged fields
func (b *DeleteBucketTaggingRequestBuilder) Build() *DeleteBucketTaggingRequest {
	return &DeleteBucketTaggingRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *DeleteBucketTaggingRequest) ToBuilder() *DeleteBucketTaggingRequestBuilder {
	return &DeleteBucketTaggingRequestBuilder{f: req.f.clone()}
}

func (req *DeleteBucketTaggingRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *DeleteBucketTaggingRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *DeleteBucketTaggingRequest) Equal(other *DeleteBucketTaggingRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *DeleteBucketTaggingRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("DeleteBucketTaggingRequest")
	h.String(req.f.bucket)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *DeleteBucketTaggingRequest) String() string {
	return model.NewPrinter("DeleteBucketTaggingRequest").
		Field("Bucket", req.f.bucket).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// DeleteBucketTaggingResponse is the output of DeleteBucketTagging. It has no fields; every instance is interchangeable.
type DeleteBucketTaggingResponse struct{}

// NewDeleteBucketTaggingResponse returns the marker
func NewDeleteBucketTaggingResponse() DeleteBucketTaggingResponse {
	return DeleteBucketTaggingResponse{}
}

// Equal always reports true
func (DeleteBucketTaggingResponse) Equal(DeleteBucketTaggingResponse) bool {
	return true
}

// Hash returns the same value for every instance
func (DeleteBucketTaggingResponse) Hash() uint64 {
	return model.NewHasher("DeleteBucketTaggingResponse").Sum64()
}

func (DeleteBucketTaggingResponse) String() string {
	return "DeleteBucketTaggingResponse()"
}
