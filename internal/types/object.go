package types

import (
	"time"

	"github.com/KirkDiggler/s3-model/internal/model"
)

// HeadObjectRequest is the input of HeadObject
type HeadObjectRequest struct {
	f headObjectRequestFields
}

type headObjectRequestFields struct {
	bucket               *string
	key                  *string
	versionID            *string
	ifMatch              *string
	ifNoneMatch          *string
	ifModifiedSince      *time.Time
	ifUnmodifiedSince    *time.Time
	byteRange            *string
	partNumber           *int32
	sseCustomerAlgorithm *string
	sseCustomerKey       *string
	sseCustomerKeyMD5    *string
	requestPayer         *RequestPayer
	expectedBucketOwner  *string
}

func (f headObjectRequestFields) clone() headObjectRequestFields {
	return headObjectRequestFields{
		bucket:               model.ClonePtr(f.bucket),
		key:                  model.ClonePtr(f.key),
		versionID:            model.ClonePtr(f.versionID),
		ifMatch:              model.ClonePtr(f.ifMatch),
		ifNoneMatch:          model.ClonePtr(f.ifNoneMatch),
		ifModifiedSince:      model.ClonePtr(f.ifModifiedSince),
		ifUnmodifiedSince:    model.ClonePtr(f.ifUnmodifiedSince),
		byteRange:            model.ClonePtr(f.byteRange),
		partNumber:           model.ClonePtr(f.partNumber),
		sseCustomerAlgorithm: model.ClonePtr(f.sseCustomerAlgorithm),
		sseCustomerKey:       model.ClonePtr(f.sseCustomerKey),
		sseCustomerKeyMD5:    model.ClonePtr(f.sseCustomerKeyMD5),
		requestPayer:         model.ClonePtr(f.requestPayer),
		expectedBucketOwner:  model.ClonePtr(f.expectedBucketOwner),
	}
}

// HeadObjectRequestBuilder stages the fields of a HeadObjectRequest
type HeadObjectRequestBuilder struct {
	f headObjectRequestFields
}

// NewHeadObjectRequestBuilder returns a builder with every field absent
func NewHeadObjectRequestBuilder() *HeadObjectRequestBuilder {
	return &HeadObjectRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *HeadObjectRequestBuilder) WithBucket(v *string) *HeadObjectRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithKey sets Key; nil clears it
func (b *HeadObjectRequestBuilder) WithKey(v *string) *HeadObjectRequestBuilder {
	b.f.key = model.ClonePtr(v)
	return b
}

// WithVersionID sets VersionID; nil clears it
func (b *HeadObjectRequestBuilder) WithVersionID(v *string) *HeadObjectRequestBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithIfMatch sets IfMatch; nil clears it
func (b *HeadObjectRequestBuilder) WithIfMatch(v *string) *HeadObjectRequestBuilder {
	b.f.ifMatch = model.ClonePtr(v)
	return b
}

// WithIfNoneMatch sets IfNoneMatch; nil clears it
func (b *HeadObjectRequestBuilder) WithIfNoneMatch(v *string) *HeadObjectRequestBuilder {
	b.f.ifNoneMatch = model.ClonePtr(v)
	return b
}

// WithIfModifiedSince sets IfModifiedSince; nil clears it
func (b *HeadObjectRequestBuilder) WithIfModifiedSince(v *time.Time) *HeadObjectRequestBuilder {
	b.f.ifModifiedSince = model.ClonePtr(v)
	return b
}

// WithIfUnmodifiedSince sets IfUnmodifiedSince; nil clears it
func (b *HeadObjectRequestBuilder) WithIfUnmodifiedSince(v *time.Time) *HeadObjectRequestBuilder {
	b.f.ifUnmodifiedSince = model.ClonePtr(v)
	return b
}

// WithRange sets Range; nil clears it
func (b *HeadObjectRequestBuilder) WithRange(v *string) *HeadObjectRequestBuilder {
	b.f.byteRange = model.ClonePtr(v)
	return b
}

// WithPartNumber sets PartNumber; nil clears it
func (b *HeadObjectRequestBuilder) WithPartNumber(v *int32) *HeadObjectRequestBuilder {
	b.f.partNumber = model.ClonePtr(v)
	return b
}

// WithSSECustomerAlgorithm sets SSECustomerAlgorithm; nil clears it
func (b *HeadObjectRequestBuilder) WithSSECustomerAlgorithm(v *string) *HeadObjectRequestBuilder {
	b.f.sseCustomerAlgorithm = model.ClonePtr(v)
	return b
}

// WithSSECustomerKey sets SSECustomerKey; nil clears it
func (b *HeadObjectRequestBuilder) WithSSECustomerKey(v *string) *HeadObjectRequestBuilder {
	b.f.sseCustomerKey = model.ClonePtr(v)
	return b
}

// WithSSECustomerKeyMD5 sets SSECustomerKeyMD5; nil clears it
func (b *HeadObjectRequestBuilder) WithSSECustomerKeyMD5(v *string) *HeadObjectRequestBuilder {
	b.f.sseCustomerKeyMD5 = model.ClonePtr(v)
	return b
}

// WithRequestPayer sets RequestPayer; nil clears it
func (b *HeadObjectRequestBuilder) WithRequestPayer(v *RequestPayer) *HeadObjectRequestBuilder {
	b.f.requestPayer = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *HeadObjectRequestBuilder) WithExpectedBucketOwner(v *string) *HeadObjectRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable HeadObjectRequest holding a copy of the staged fields
func (b *HeadObjectRequestBuilder) Build() *HeadObjectRequest {
	return &HeadObjectRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *HeadObjectRequest) ToBuilder() *HeadObjectRequestBuilder {
	return &HeadObjectRequestBuilder{f: req.f.clone()}
}

func (req *HeadObjectRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

func (req *HeadObjectRequest) Key() (string, bool) {
	return model.Get(req.f.key)
}

// VersionID is the object version
func (req *HeadObjectRequest) VersionID() (string, bool) {
	return model.Get(req.f.versionID)
}

// IfMatch makes the request conditional on the ETag matching
func (req *HeadObjectRequest) IfMatch() (string, bool) {
	return model.Get(req.f.ifMatch)
}

// IfNoneMatch makes the request conditional on the ETag differing
func (req *HeadObjectRequest) IfNoneMatch() (string, bool) {
	return model.Get(req.f.ifNoneMatch)
}

// IfModifiedSince makes the request conditional on a change after this time
func (req *HeadObjectRequest) IfModifiedSince() (time.Time, bool) {
	return model.Get(req.f.ifModifiedSince)
}

// IfUnmodifiedSince makes the request conditional on no change since this time
func (req *HeadObjectRequest) IfUnmodifiedSince() (time.Time, bool) {
	return model.Get(req.f.ifUnmodifiedSince)
}

// Range is the HTTP Range header, e.g. bytes=0-99
func (req *HeadObjectRequest) Range() (string, bool) {
	return model.Get(req.f.byteRange)
}

// PartNumber selects a single part of a multipart object
func (req *HeadObjectRequest) PartNumber() (int32, bool) {
	return model.Get(req.f.partNumber)
}

// SSECustomerAlgorithm is the algorithm of a customer-provided key, AES256
func (req *HeadObjectRequest) SSECustomerAlgorithm() (string, bool) {
	return model.Get(req.f.sseCustomerAlgorithm)
}

// SSECustomerKey is the customer-provided key. String redacts it
func (req *HeadObjectRequest) SSECustomerKey() (string, bool) {
	return model.Get(req.f.sseCustomerKey)
}

// SSECustomerKeyMD5 is the base64 MD5 of the customer-provided key
func (req *HeadObjectRequest) SSECustomerKeyMD5() (string, bool) {
	return model.Get(req.f.sseCustomerKeyMD5)
}

// RequestPayer confirms the requester pays for a Requester Pays bucket
func (req *HeadObjectRequest) RequestPayer() (RequestPayer, bool) {
	return model.Get(req.f.requestPayer)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *HeadObjectRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *HeadObjectRequest) Equal(other *HeadObjectRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.key, other.f.key) &&
		model.EqualPtr(req.f.versionID, other.f.versionID) &&
		model.EqualPtr(req.f.ifMatch, other.f.ifMatch) &&
		model.EqualPtr(req.f.ifNoneMatch, other.f.ifNoneMatch) &&
		model.EqualTime(req.f.ifModifiedSince, other.f.ifModifiedSince) &&
		model.EqualTime(req.f.ifUnmodifiedSince, other.f.ifUnmodifiedSince) &&
		model.EqualPtr(req.f.byteRange, other.f.byteRange) &&
		model.EqualPtr(req.f.partNumber, other.f.partNumber) &&
		model.EqualPtr(req.f.sseCustomerAlgorithm, other.f.sseCustomerAlgorithm) &&
		model.EqualPtr(req.f.sseCustomerKey, other.f.sseCustomerKey) &&
		model.EqualPtr(req.f.sseCustomerKeyMD5, other.f.sseCustomerKeyMD5) &&
		model.EqualPtr(req.f.requestPayer, other.f.requestPayer) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *HeadObjectRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("HeadObjectRequest")
	h.String(req.f.bucket)
	h.String(req.f.key)
	h.String(req.f.versionID)
	h.String(req.f.ifMatch)
	h.String(req.f.ifNoneMatch)
	h.Time(req.f.ifModifiedSince)
	h.Time(req.f.ifUnmodifiedSince)
	h.String(req.f.byteRange)
	h.Int32(req.f.partNumber)
	h.String(req.f.sseCustomerAlgorithm)
	h.String(req.f.sseCustomerKey)
	h.String(req.f.sseCustomerKeyMD5)
	model.HashEnum(h, req.f.requestPayer)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *HeadObjectRequest) String() string {
	return model.NewPrinter("HeadObjectRequest").
		Field("Bucket", req.f.bucket).
		Field("Key", req.f.key).
		Field("VersionID", req.f.versionID).
		Field("IfMatch", req.f.ifMatch).
		Field("IfNoneMatch", req.f.ifNoneMatch).
		Field("IfModifiedSince", req.f.ifModifiedSince).
		Field("IfUnmodifiedSince", req.f.ifUnmodifiedSince).
		Field("Range", req.f.byteRange).
		Field("PartNumber", req.f.partNumber).
		Field("SSECustomerAlgorithm", req.f.sseCustomerAlgorithm).
		Sensitive("SSECustomerKey", req.f.sseCustomerKey).
		Field("SSECustomerKeyMD5", req.f.sseCustomerKeyMD5).
		Field("RequestPayer", req.f.requestPayer).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// HeadObjectResponse is the output of HeadObject
type HeadObjectResponse struct {
	f headObjectResponseFields
}

type headObjectResponseFields struct {
	acceptRanges         *string
	archiveStatus        *ArchiveStatus
	contentLength        *int64
	contentType          *string
	contentEncoding      *string
	cacheControl         *string
	etag                 *string
	lastModified         *time.Time
	expires              *time.Time
	deleteMarker         *bool
	versionID            *string
	metadata             map[string]string
	missingMeta          *int32
	serverSideEncryption *ServerSideEncryption
	sseKMSKeyID          *string
	bucketKeyEnabled     *bool
	storageClass         *StorageClass
	requestCharged       *RequestCharged
	replicationStatus    *ReplicationStatus
	partsCount           *int32
	checksumCRC32        *string
	checksumSHA256       *string
}

func (f headObjectResponseFields) clone() headObjectResponseFields {
	return headObjectResponseFields{
		acceptRanges:         model.ClonePtr(f.acceptRanges),
		archiveStatus:        model.ClonePtr(f.archiveStatus),
		contentLength:        model.ClonePtr(f.contentLength),
		contentType:          model.ClonePtr(f.contentType),
		contentEncoding:      model.ClonePtr(f.contentEncoding),
		cacheControl:         model.ClonePtr(f.cacheControl),
		etag:                 model.ClonePtr(f.etag),
		lastModified:         model.ClonePtr(f.lastModified),
		expires:              model.ClonePtr(f.expires),
		deleteMarker:         model.ClonePtr(f.deleteMarker),
		versionID:            model.ClonePtr(f.versionID),
		metadata:             model.CloneMap(f.metadata),
		missingMeta:          model.ClonePtr(f.missingMeta),
		serverSideEncryption: model.ClonePtr(f.serverSideEncryption),
		sseKMSKeyID:          model.ClonePtr(f.sseKMSKeyID),
		bucketKeyEnabled:     model.ClonePtr(f.bucketKeyEnabled),
		storageClass:         model.ClonePtr(f.storageClass),
		requestCharged:       model.ClonePtr(f.requestCharged),
		replicationStatus:    model.ClonePtr(f.replicationStatus),
		partsCount:           model.ClonePtr(f.partsCount),
		checksumCRC32:        model.ClonePtr(f.checksumCRC32),
		checksumSHA256:       model.ClonePtr(f.checksumSHA256),
	}
}

// HeadObjectResponseBuilder stages the fields of a HeadObjectResponse
type HeadObjectResponseBuilder struct {
	f headObjectResponseFields
}

// NewHeadObjectResponseBuilder returns a builder with every field absent
func NewHeadObjectResponseBuilder() *HeadObjectResponseBuilder {
	return &HeadObjectResponseBuilder{}
}

// WithAcceptRanges sets AcceptRanges; nil clears it
func (b *HeadObjectResponseBuilder) WithAcceptRanges(v *string) *HeadObjectResponseBuilder {
	b.f.acceptRanges = model.ClonePtr(v)
	return b
}

// WithArchiveStatus sets ArchiveStatus; nil clears it
func (b *HeadObjectResponseBuilder) WithArchiveStatus(v *ArchiveStatus) *HeadObjectResponseBuilder {
	b.f.archiveStatus = model.ClonePtr(v)
	return b
}

// WithContentLength sets ContentLength; nil clears it
func (b *HeadObjectResponseBuilder) WithContentLength(v *int64) *HeadObjectResponseBuilder {
	b.f.contentLength = model.ClonePtr(v)
	return b
}

// WithContentType sets ContentType; nil clears it
func (b *HeadObjectResponseBuilder) WithContentType(v *string) *HeadObjectResponseBuilder {
	b.f.contentType = model.ClonePtr(v)
	return b
}

// WithContentEncoding sets ContentEncoding; nil clears it
func (b *HeadObjectResponseBuilder) WithContentEncoding(v *string) *HeadObjectResponseBuilder {
	b.f.contentEncoding = model.ClonePtr(v)
	return b
}

// WithCacheControl sets CacheControl; nil clears it
func (b *HeadObjectResponseBuilder) WithCacheControl(v *string) *HeadObjectResponseBuilder {
	b.f.cacheControl = model.ClonePtr(v)
	return b
}

// WithETag sets ETag; nil clears it
func (b *HeadObjectResponseBuilder) WithETag(v *string) *HeadObjectResponseBuilder {
	b.f.etag = model.ClonePtr(v)
	return b
}

// WithLastModified sets LastModified; nil clears it
func (b *HeadObjectResponseBuilder) WithLastModified(v *time.Time) *HeadObjectResponseBuilder {
	b.f.lastModified = model.ClonePtr(v)
	return b
}

// WithExpires sets Expires; nil clears it
func (b *HeadObjectResponseBuilder) WithExpires(v *time.Time) *HeadObjectResponseBuilder {
	b.f.expires = model.ClonePtr(v)
	return b
}

// WithDeleteMarker sets DeleteMarker; nil clears it
func (b *HeadObjectResponseBuilder) WithDeleteMarker(v *bool) *HeadObjectResponseBuilder {
	b.f.deleteMarker = model.ClonePtr(v)
	return b
}

// WithVersionID sets VersionID; nil clears it
func (b *HeadObjectResponseBuilder) WithVersionID(v *string) *HeadObjectResponseBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithMetadata sets Metadata. nil leaves it absent.
func (b *HeadObjectResponseBuilder) WithMetadata(v map[string]string) *HeadObjectResponseBuilder {
	b.f.metadata = model.CloneMap(v)
	return b
}

// WithMissingMeta sets MissingMeta; nil clears it
func (b *HeadObjectResponseBuilder) WithMissingMeta(v *int32) *HeadObjectResponseBuilder {
	b.f.missingMeta = model.ClonePtr(v)
	return b
}

// WithServerSideEncryption sets ServerSideEncryption; nil clears it
func (b *HeadObjectResponseBuilder) WithServerSideEncryption(v *ServerSideEncryption) *HeadObjectResponseBuilder {
	b.f.serverSideEncryption = model.ClonePtr(v)
	return b
}

// WithSSEKMSKeyID sets SSEKMSKeyID; nil clears it
func (b *HeadObjectResponseBuilder) WithSSEKMSKeyID(v *string) *HeadObjectResponseBuilder {
	b.f.sseKMSKeyID = model.ClonePtr(v)
	return b
}

// WithBucketKeyEnabled sets BucketKeyEnabled; nil clears it
func (b *HeadObjectResponseBuilder) WithBucketKeyEnabled(v *bool) *HeadObjectResponseBuilder {
	b.f.bucketKeyEnabled = model.ClonePtr(v)
	return b
}

// WithStorageClass sets StorageClass; nil clears it
func (b *HeadObjectResponseBuilder) WithStorageClass(v *StorageClass) *HeadObjectResponseBuilder {
	b.f.storageClass = model.ClonePtr(v)
	return b
}

// WithRequestCharged sets RequestCharged; nil clears it
func (b *HeadObjectResponseBuilder) WithRequestCharged(v *RequestCharged) *HeadObjectResponseBuilder {
	b.f.requestCharged = model.ClonePtr(v)
	return b
}

// WithReplicationStatus sets ReplicationStatus; nil clears it
func (b *HeadObjectResponseBuilder) WithReplicationStatus(v *ReplicationStatus) *HeadObjectResponseBuilder {
	b.f.replicationStatus = model.ClonePtr(v)
	return b
}

// WithPartsCount sets PartsCount; nil clears it
func (b *HeadObjectResponseBuilder) WithPartsCount(v *int32) *HeadObjectResponseBuilder {
	b.f.partsCount = model.ClonePtr(v)
	return b
}

// WithChecksumCRC32 sets ChecksumCRC32; nil clears it
func (b *HeadObjectResponseBuilder) WithChecksumCRC32(v *string) *HeadObjectResponseBuilder {
	b.f.checksumCRC32 = model.ClonePtr(v)
	return b
}

// WithChecksumSHA256 sets ChecksumSHA256; nil clears it
func (b *HeadObjectResponseBuilder) WithChecksumSHA256(v *string) *HeadObjectResponseBuilder {
	b.f.checksumSHA256 = model.ClonePtr(v)
	return b
}

// Build returns an immutable HeadObjectResponse holding a copy of the staged fields
func (b *HeadObjectResponseBuilder) Build() *HeadObjectResponse {
	return &HeadObjectResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *HeadObjectResponse) ToBuilder() *HeadObjectResponseBuilder {
	return &HeadObjectResponseBuilder{f: resp.f.clone()}
}

// AcceptRanges is the Accept-Ranges header, "bytes" when range reads are supported
func (resp *HeadObjectResponse) AcceptRanges() (string, bool) {
	return model.Get(resp.f.acceptRanges)
}

// ArchiveStatus is the archive tier of an Intelligent-Tiering object
func (resp *HeadObjectResponse) ArchiveStatus() (ArchiveStatus, bool) {
	return model.Get(resp.f.archiveStatus)
}

// ContentLength is the object size in bytes
func (resp *HeadObjectResponse) ContentLength() (int64, bool) {
	return model.Get(resp.f.contentLength)
}

// ContentType is the MIME type stored with the object
func (resp *HeadObjectResponse) ContentType() (string, bool) {
	return model.Get(resp.f.contentType)
}

// ContentEncoding is the Content-Encoding header stored with the object
func (resp *HeadObjectResponse) ContentEncoding() (string, bool) {
	return model.Get(resp.f.contentEncoding)
}

// CacheControl is the Cache-Control header stored with the object
func (resp *HeadObjectResponse) CacheControl() (string, bool) {
	return model.Get(resp.f.cacheControl)
}

// ETag is the entity tag, quotes included
func (resp *HeadObjectResponse) ETag() (string, bool) {
	return model.Get(resp.f.etag)
}

// LastModified is when the object was last written
func (resp *HeadObjectResponse) LastModified() (time.Time, bool) {
	return model.Get(resp.f.lastModified)
}

// Expires is the time after which the object should no longer be cached
func (resp *HeadObjectResponse) Expires() (time.Time, bool) {
	return model.Get(resp.f.expires)
}

// DeleteMarker reports whether the version addressed is a delete marker
func (resp *HeadObjectResponse) DeleteMarker() (bool, bool) {
	return model.Get(resp.f.deleteMarker)
}

// VersionID is the object version
func (resp *HeadObjectResponse) VersionID() (string, bool) {
	return model.Get(resp.f.versionID)
}

// Metadata holds the user metadata headers with the x-amz-meta- prefix removed
func (resp *HeadObjectResponse) Metadata() (map[string]string, bool) {
	return model.CloneMap(resp.f.metadata), resp.f.metadata != nil
}

// MissingMeta counts metadata entries the response could not carry as headers
func (resp *HeadObjectResponse) MissingMeta() (int32, bool) {
	return model.Get(resp.f.missingMeta)
}

// ServerSideEncryption is the server-side encryption algorithm
func (resp *HeadObjectResponse) ServerSideEncryption() (ServerSideEncryption, bool) {
	return model.Get(resp.f.serverSideEncryption)
}

// SSEKMSKeyID is the KMS key id used for encryption
func (resp *HeadObjectResponse) SSEKMSKeyID() (string, bool) {
	return model.Get(resp.f.sseKMSKeyID)
}

// BucketKeyEnabled reports whether SSE-KMS used an S3 Bucket Key
func (resp *HeadObjectResponse) BucketKeyEnabled() (bool, bool) {
	return model.Get(resp.f.bucketKeyEnabled)
}

// StorageClass is the storage class
func (resp *HeadObjectResponse) StorageClass() (StorageClass, bool) {
	return model.Get(resp.f.storageClass)
}

// RequestCharged reports that the requester was charged
func (resp *HeadObjectResponse) RequestCharged() (RequestCharged, bool) {
	return model.Get(resp.f.requestCharged)
}

// ReplicationStatus is the cross-region replication state of the object
func (resp *HeadObjectResponse) ReplicationStatus() (ReplicationStatus, bool) {
	return model.Get(resp.f.replicationStatus)
}

// PartsCount is the number of parts of a multipart object
func (resp *HeadObjectResponse) PartsCount() (int32, bool) {
	return model.Get(resp.f.partsCount)
}

// ChecksumCRC32 is the base64 CRC32 of the object
func (resp *HeadObjectResponse) ChecksumCRC32() (string, bool) {
	return model.Get(resp.f.checksumCRC32)
}

// ChecksumSHA256 is the base64 SHA-256 of the object
func (resp *HeadObjectResponse) ChecksumSHA256() (string, bool) {
	return model.Get(resp.f.checksumSHA256)
}

// Equal reports whether resp and other hold the same field values
func (resp *HeadObjectResponse) Equal(other *HeadObjectResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualPtr(resp.f.acceptRanges, other.f.acceptRanges) &&
		model.EqualPtr(resp.f.archiveStatus, other.f.archiveStatus) &&
		model.EqualPtr(resp.f.contentLength, other.f.contentLength) &&
		model.EqualPtr(resp.f.contentType, other.f.contentType) &&
		model.EqualPtr(resp.f.contentEncoding, other.f.contentEncoding) &&
		model.EqualPtr(resp.f.cacheControl, other.f.cacheControl) &&
		model.EqualPtr(resp.f.etag, other.f.etag) &&
		model.EqualTime(resp.f.lastModified, other.f.lastModified) &&
		model.EqualTime(resp.f.expires, other.f.expires) &&
		model.EqualPtr(resp.f.deleteMarker, other.f.deleteMarker) &&
		model.EqualPtr(resp.f.versionID, other.f.versionID) &&
		model.EqualMap(resp.f.metadata, other.f.metadata) &&
		model.EqualPtr(resp.f.missingMeta, other.f.missingMeta) &&
		model.EqualPtr(resp.f.serverSideEncryption, other.f.serverSideEncryption) &&
		model.EqualPtr(resp.f.sseKMSKeyID, other.f.sseKMSKeyID) &&
		model.EqualPtr(resp.f.bucketKeyEnabled, other.f.bucketKeyEnabled) &&
		model.EqualPtr(resp.f.storageClass, other.f.storageClass) &&
		model.EqualPtr(resp.f.requestCharged, other.f.requestCharged) &&
		model.EqualPtr(resp.f.replicationStatus, other.f.replicationStatus) &&
		model.EqualPtr(resp.f.partsCount, other.f.partsCount) &&
		model.EqualPtr(resp.f.checksumCRC32, other.f.checksumCRC32) &&
		model.EqualPtr(resp.f.checksumSHA256, other.f.checksumSHA256)
}

// Hash is consistent with Equal
func (resp *HeadObjectResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("HeadObjectResponse")
	h.String(resp.f.acceptRanges)
	model.HashEnum(h, resp.f.archiveStatus)
	h.Int64(resp.f.contentLength)
	h.String(resp.f.contentType)
	h.String(resp.f.contentEncoding)
	h.String(resp.f.cacheControl)
	h.String(resp.f.etag)
	h.Time(resp.f.lastModified)
	h.Time(resp.f.expires)
	h.Bool(resp.f.deleteMarker)
	h.String(resp.f.versionID)
	h.StringMap(resp.f.metadata)
	h.Int32(resp.f.missingMeta)
	model.HashEnum(h, resp.f.serverSideEncryption)
	h.String(resp.f.sseKMSKeyID)
	h.Bool(resp.f.bucketKeyEnabled)
	model.HashEnum(h, resp.f.storageClass)
	model.HashEnum(h, resp.f.requestCharged)
	model.HashEnum(h, resp.f.replicationStatus)
	h.Int32(resp.f.partsCount)
	h.String(resp.f.checksumCRC32)
	h.String(resp.f.checksumSHA256)
	return h.Sum64()
}

func (resp *HeadObjectResponse) String() string {
	return model.NewPrinter("HeadObjectResponse").
		Field("AcceptRanges", resp.f.acceptRanges).
		Field("ArchiveStatus", resp.f.archiveStatus).
		Field("ContentLength", resp.f.contentLength).
		Field("ContentType", resp.f.contentType).
		Field("ContentEncoding", resp.f.contentEncoding).
		Field("CacheControl", resp.f.cacheControl).
		Field("ETag", resp.f.etag).
		Field("LastModified", resp.f.lastModified).
		Field("Expires", resp.f.expires).
		Field("DeleteMarker", resp.f.deleteMarker).
		Field("VersionID", resp.f.versionID).
		Field("Metadata", resp.f.metadata).
		Field("MissingMeta", resp.f.missingMeta).
		Field("ServerSideEncryption", resp.f.serverSideEncryption).
		Sensitive("SSEKMSKeyID", resp.f.sseKMSKeyID).
		Field("BucketKeyEnabled", resp.f.bucketKeyEnabled).
		Field("StorageClass", resp.f.storageClass).
		Field("RequestCharged", resp.f.requestCharged).
		Field("ReplicationStatus", resp.f.replicationStatus).
		Field("PartsCount", resp.f.partsCount).
		Field("ChecksumCRC32", resp.f.checksumCRC32).
		Field("ChecksumSHA256", resp.f.checksumSHA256).
		String()
}

// GetObjectRequest is the input of GetObject
type GetObjectRequest struct {
	f getObjectRequestFields
}

type getObjectRequestFields struct {
	bucket               *string
	key                  *string
	versionID            *string
	ifMatch              *string
	ifNoneMatch          *string
	ifModifiedSince      *time.Time
	ifUnmodifiedSince    *time.Time
	byteRange            *string
	partNumber           *int32
	responseContentType  *string
	responseCacheControl *string
	sseCustomerAlgorithm *string
	sseCustomerKey       *string
	sseCustomerKeyMD5    *string
	requestPayer         *RequestPayer
	expectedBucketOwner  *string
}

func (f getObjectRequestFields) clone() getObjectRequestFields {
	return getObjectRequestFields{
		bucket:               model.ClonePtr(f.bucket),
		key:                  model.ClonePtr(f.key),
		versionID:            model.ClonePtr(f.versionID),
		ifMatch:              model.ClonePtr(f.ifMatch),
		ifNoneMatch:          model.ClonePtr(f.ifNoneMatch),
		ifModifiedSince:      model.ClonePtr(f.ifModifiedSince),
		ifUnmodifiedSince:    model.ClonePtr(f.ifUnmodifiedSince),
		byteRange:            model.ClonePtr(f.byteRange),
		partNumber:           model.ClonePtr(f.partNumber),
		responseContentType:  model.ClonePtr(f.responseContentType),
		responseCacheControl: model.ClonePtr(f.responseCacheControl),
		sseCustomerAlgorithm: model.ClonePtr(f.sseCustomerAlgorithm),
		sseCustomerKey:       model.ClonePtr(f.sseCustomerKey),
		sseCustomerKeyMD5:    model.ClonePtr(f.sseCustomerKeyMD5),
		requestPayer:         model.ClonePtr(f.requestPayer),
		expectedBucketOwner:  model.ClonePtr(f.expectedBucketOwner),
	}
}

// GetObjectRequestBuilder stages the fields of a GetObjectRequest
type GetObjectRequestBuilder struct {
	f getObjectRequestFields
}

// NewGetObjectRequestBuilder returns a builder with every field absent
func NewGetObjectRequestBuilder() *GetObjectRequestBuilder {
	return &GetObjectRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *GetObjectRequestBuilder) WithBucket(v *string) *GetObjectRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithKey sets Key; nil clears it
func (b *GetObjectRequestBuilder) WithKey(v *string) *GetObjectRequestBuilder {
	b.f.key = model.ClonePtr(v)
	return b
}

// WithVersionID sets VersionID; nil clears it
func (b *GetObjectRequestBuilder) WithVersionID(v *string) *GetObjectRequestBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithIfMatch sets IfMatch; nil clears it
func (b *GetObjectRequestBuilder) WithIfMatch(v *string) *GetObjectRequestBuilder {
	b.f.ifMatch = model.ClonePtr(v)
	return b
}

// WithIfNoneMatch sets IfNoneMatch; nil clears it
func (b *GetObjectRequestBuilder) WithIfNoneMatch(v *string) *GetObjectRequestBuilder {
	b.f.ifNoneMatch = model.ClonePtr(v)
	return b
}

// WithIfModifiedSince sets IfModifiedSince; nil clears it
func (b *GetObjectRequestBuilder) WithIfModifiedSince(v *time.Time) *GetObjectRequestBuilder {
	b.f.ifModifiedSince = model.ClonePtr(v)
	return b
}

// WithIfUnmodifiedSince sets IfUnmodifiedSince; nil clears it
func (b *GetObjectRequestBuilder) WithIfUnmodifiedSince(v *time.Time) *GetObjectRequestBuilder {
	b.f.ifUnmodifiedSince = model.ClonePtr(v)
	return b
}

// WithRange sets Range; nil clears it
func (b *GetObjectRequestBuilder) WithRange(v *string) *GetObjectRequestBuilder {
	b.f.byteRange = model.ClonePtr(v)
	return b
}

// WithPartNumber sets PartNumber; nil clears it
func (b *GetObjectRequestBuilder) WithPartNumber(v *int32) *GetObjectRequestBuilder {
	b.f.partNumber = model.ClonePtr(v)
	return b
}

// WithResponseContentType sets ResponseContentType; nil clears it
func (b *GetObjectRequestBuilder) WithResponseContentType(v *string) *GetObjectRequestBuilder {
	b.f.responseContentType = model.ClonePtr(v)
	return b
}

// WithResponseCacheControl sets ResponseCacheControl; nil clears it
func (b *GetObjectRequestBuilder) WithResponseCacheControl(v *string) *GetObjectRequestBuilder {
	b.f.responseCacheControl = model.ClonePtr(v)
	return b
}

// WithSSECustomerAlgorithm sets SSECustomerAlgorithm; nil clears it
func (b *GetObjectRequestBuilder) WithSSECustomerAlgorithm(v *string) *GetObjectRequestBuilder {
	b.f.sseCustomerAlgorithm = model.ClonePtr(v)
	return b
}

// WithSSECustomerKey sets SSECustomerKey; nil clears it
func (b *GetObjectRequestBuilder) WithSSECustomerKey(v *string) *GetObjectRequestBuilder {
	b.f.sseCustomerKey = model.ClonePtr(v)
	return b
}

// WithSSECustomerKeyMD5 sets SSECustomerKeyMD5; nil clears it
func (b *GetObjectRequestBuilder) WithSSECustomerKeyMD5(v *string) *GetObjectRequestBuilder {
	b.f.sseCustomerKeyMD5 = model.ClonePtr(v)
	return b
}

// WithRequestPayer sets RequestPayer; nil clears it
func (b *GetObjectRequestBuilder) WithRequestPayer(v *RequestPayer) *GetObjectRequestBuilder {
	b.f.requestPayer = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *GetObjectRequestBuilder) WithExpectedBucketOwner(v *string) *GetObjectRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable GetObjectRequest holding a copy of the staged fields
func (b *GetObjectRequestBuilder) Build() *GetObjectRequest {
	return &GetObjectRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *GetObjectRequest) ToBuilder() *GetObjectRequestBuilder {
	return &GetObjectRequestBuilder{f: req.f.clone()}
}

func (req *GetObjectRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

func (req *GetObjectRequest) Key() (string, bool) {
	return model.Get(req.f.key)
}

// VersionID is the object version
func (req *GetObjectRequest) VersionID() (string, bool) {
	return model.Get(req.f.versionID)
}

// IfMatch makes the request conditional on the ETag matching
func (req *GetObjectRequest) IfMatch() (string, bool) {
	return model.Get(req.f.ifMatch)
}

// IfNoneMatch makes the request conditional on the ETag differing
func (req *GetObjectRequest) IfNoneMatch() (string, bool) {
	return model.Get(req.f.ifNoneMatch)
}

// IfModifiedSince makes the request conditional on a change after this time
func (req *GetObjectRequest) IfModifiedSince() (time.Time, bool) {
	return model.Get(req.f.ifModifiedSince)
}

// IfUnmodifiedSince makes the request conditional on no change since this time
func (req *GetObjectRequest) IfUnmodifiedSince() (time.Time, bool) {
	return model.Get(req.f.ifUnmodifiedSince)
}

// Range is the HTTP Range header, e.g. bytes=0-99
func (req *GetObjectRequest) Range() (string, bool) {
	return model.Get(req.f.byteRange)
}

// PartNumber selects a single part of a multipart object
func (req *GetObjectRequest) PartNumber() (int32, bool) {
	return model.Get(req.f.partNumber)
}

// ResponseContentType overrides Content-Type on the response
func (req *GetObjectRequest) ResponseContentType() (string, bool) {
	return model.Get(req.f.responseContentType)
}

// ResponseCacheControl overrides Cache-Control on the response
func (req *GetObjectRequest) ResponseCacheControl() (string, bool) {
	return model.Get(req.f.responseCacheControl)
}

// SSECustomerAlgorithm is the algorithm of a customer-provided key, AES256
func (req *GetObjectRequest) SSECustomerAlgorithm() (string, bool) {
	return model.Get(req.f.sseCustomerAlgorithm)
}

// SSECustomerKey is the customer-provided key. String redacts it
func (req *GetObjectRequest) SSECustomerKey() (string, bool) {
	return model.Get(req.f.sseCustomerKey)
}

// SSECustomerKeyMD5 is the base64 MD5 of the customer-provided key
func (req *GetObjectRequest) SSECustomerKeyMD5() (string, bool) {
	return model.Get(req.f.sseCustomerKeyMD5)
}

// RequestPayer confirms the requester pays for a Requester Pays bucket
func (req *GetObjectRequest) RequestPayer() (RequestPayer, bool) {
	return model.Get(req.f.requestPayer)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *GetObjectRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *GetObjectRequest) Equal(other *GetObjectRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.key, other.f.key) &&
		model.EqualPtr(req.f.versionID, other.f.versionID) &&
		model.EqualPtr(req.f.ifMatch, other.f.ifMatch) &&
		model.EqualPtr(req.f.ifNoneMatch, other.f.ifNoneMatch) &&
		model.EqualTime(req.f.ifModifiedSince, other.f.ifModifiedSince) &&
		model.EqualTime(req.f.ifUnmodifiedSince, other.f.ifUnmodifiedSince) &&
		model.EqualPtr(req.f.byteRange, other.f.byteRange) &&
		model.EqualPtr(req.f.partNumber, other.f.partNumber) &&
		model.EqualPtr(req.f.responseContentType, other.f.responseContentType) &&
		model.EqualPtr(req.f.responseCacheControl, other.f.responseCacheControl) &&
		model.EqualPtr(req.f.sseCustomerAlgorithm, other.f.sseCustomerAlgorithm) &&
		model.EqualPtr(req.f.sseCustomerKey, other.f.sseCustomerKey) &&
		model.EqualPtr(req.f.sseCustomerKeyMD5, other.f.sseCustomerKeyMD5) &&
		model.EqualPtr(req.f.requestPayer, other.f.requestPayer) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *GetObjectRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("GetObjectRequest")
	h.String(req.f.bucket)
	h.String(req.f.key)
	h.String(req.f.versionID)
	h.String(req.f.ifMatch)
	h.String(req.f.ifNoneMatch)
	h.Time(req.f.ifModifiedSince)
	h.Time(req.f.ifUnmodifiedSince)
	h.String(req.f.byteRange)
	h.Int32(req.f.partNumber)
	h.String(req.f.responseContentType)
	h.String(req.f.responseCacheControl)
	h.String(req.f.sseCustomerAlgorithm)
	h.String(req.f.sseCustomerKey)
	h.String(req.f.sseCustomerKeyMD5)
	model.HashEnum(h, req.f.requestPayer)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *GetObjectRequest) String() string {
	return model.NewPrinter("GetObjectRequest").
		Field("Bucket", req.f.bucket).
		Field("Key", req.f.key).
		Field("VersionID", req.f.versionID).
		Field("IfMatch", req.f.ifMatch).
		Field("IfNoneMatch", req.f.ifNoneMatch).
		Field("IfModifiedSince", req.f.ifModifiedSince).
		Field("IfUnmodifiedSince", req.f.ifUnmodifiedSince).
		Field("Range", req.f.byteRange).
		Field("PartNumber", req.f.partNumber).
		Field("ResponseContentType", req.f.responseContentType).
		Field("ResponseCacheControl", req.f.responseCacheControl).
		Field("SSECustomerAlgorithm", req.f.sseCustomerAlgorithm).
		Sensitive("SSECustomerKey", req.f.sseCustomerKey).
		Field("SSECustomerKeyMD5", req.f.sseCustomerKeyMD5).
		Field("RequestPayer", req.f.requestPayer).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// DeleteObjectRequest is the input of DeleteObject
type DeleteObjectRequest struct {
	f deleteObjectRequestFields
}

type deleteObjectRequestFields struct {
	bucket                    *string
	key                       *string
	versionID                 *string
	mfa                       *string
	bypassGovernanceRetention *bool
	requestPayer              *RequestPayer
	expectedBucketOwner       *string
	ifMatch                   *string
}

func (f deleteObjectRequestFields) clone() deleteObjectRequestFields {
	return deleteObjectRequestFields{
		bucket:                    model.ClonePtr(f.bucket),
		key:                       model.ClonePtr(f.key),
		versionID:                 model.ClonePtr(f.versionID),
		mfa:                       model.ClonePtr(f.mfa),
		bypassGovernanceRetention: model.ClonePtr(f.bypassGovernanceRetention),
		requestPayer:              model.ClonePtr(f.requestPayer),
		expectedBucketOwner:       model.ClonePtr(f.expectedBucketOwner),
		ifMatch:                   model.ClonePtr(f.ifMatch),
	}
}

// DeleteObjectRequestBuilder stages the fields of a DeleteObjectRequest
type DeleteObjectRequestBuilder struct {
	f deleteObjectRequestFields
}

// NewDeleteObjectRequestBuilder returns a builder with every field absent
func NewDeleteObjectRequestBuilder() *DeleteObjectRequestBuilder {
	return &DeleteObjectRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *DeleteObjectRequestBuilder) WithBucket(v *string) *DeleteObjectRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithKey sets Key; nil clears it
func (b *DeleteObjectRequestBuilder) WithKey(v *string) *DeleteObjectRequestBuilder {
	b.f.key = model.ClonePtr(v)
	return b
}

// WithVersionID sets VersionID; nil clears it
func (b *DeleteObjectRequestBuilder) WithVersionID(v *string) *DeleteObjectRequestBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithMFA sets MFA; nil clears it
func (b *DeleteObjectRequestBuilder) WithMFA(v *string) *DeleteObjectRequestBuilder {
	b.f.mfa = model.ClonePtr(v)
	return b
}

// WithBypassGovernanceRetention sets BypassGovernanceRetention; nil clears it
func (b *DeleteObjectRequestBuilder) WithBypassGovernanceRetention(v *bool) *DeleteObjectRequestBuilder {
	b.f.bypassGovernanceRetention = model.ClonePtr(v)
	return b
}

// WithRequestPayer sets RequestPayer; nil clears it
func (b *DeleteObjectRequestBuilder) WithRequestPayer(v *RequestPayer) *DeleteObjectRequestBuilder {
	b.f.requestPayer = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *DeleteObjectRequestBuilder) WithExpectedBucketOwner(v *string) *DeleteObjectRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// WithIfMatch sets IfMatch; nil clears it
func (b *DeleteObjectRequestBuilder) WithIfMatch(v *string) *DeleteObjectRequestBuilder {
	b.f.ifMatch = model.ClonePtr(v)
	return b
}

// Build returns an immutable DeleteObjectRequest holding a copy of the staged fields
func (b *DeleteObjectRequestBuilder) Build() *DeleteObjectRequest {
	return &DeleteObjectRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *DeleteObjectRequest) ToBuilder() *DeleteObjectRequestBuilder {
	return &DeleteObjectRequestBuilder{f: req.f.clone()}
}

func (req *DeleteObjectRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

func (req *DeleteObjectRequest) Key() (string, bool) {
	return model.Get(req.f.key)
}

// VersionID is the object version
func (req *DeleteObjectRequest) VersionID() (string, bool) {
	return model.Get(req.f.versionID)
}

// MFA is the device serial and current code, space separated
func (req *DeleteObjectRequest) MFA() (string, bool) {
	return model.Get(req.f.mfa)
}

// BypassGovernanceRetention reports whether governance-mode retention is bypassed
func (req *DeleteObjectRequest) BypassGovernanceRetention() (bool, bool) {
	return model.Get(req.f.bypassGovernanceRetention)
}

// RequestPayer confirms the requester pays for a Requester Pays bucket
func (req *DeleteObjectRequest) RequestPayer() (RequestPayer, bool) {
	return model.Get(req.f.requestPayer)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *DeleteObjectRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// IfMatch makes the request conditional on the ETag matching
func (req *DeleteObjectRequest) IfMatch() (string, bool) {
	return model.Get(req.f.ifMatch)
}

// Equal reports whether req and other hold the same field values
func (req *DeleteObjectRequest) Equal(other *DeleteObjectRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.key, other.f.key) &&
		model.EqualPtr(req.f.versionID, other.f.versionID) &&
		model.EqualPtr(req.f.mfa, other.f.mfa) &&
		model.EqualPtr(req.f.bypassGovernanceRetention, other.f.bypassGovernanceRetention) &&
		model.EqualPtr(req.f.requestPayer, other.f.requestPayer) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner) &&
		model.EqualPtr(req.f.ifMatch, other.f.ifMatch)
}

// Hash is consistent with Equal
func (req *DeleteObjectRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("DeleteObjectRequest")
	h.String(req.f.bucket)
	h.String(req.f.key)
	h.String(req.f.versionID)
	h.String(req.f.mfa)
	h.Bool(req.f.bypassGovernanceRetention)
	model.HashEnum(h, req.f.requestPayer)
	h.String(req.f.expectedBucketOwner)
	h.String(req.f.ifMatch)
	return h.Sum64()
}

func (req *DeleteObjectRequest) String() string {
	return model.NewPrinter("DeleteObjectRequest").
		Field("Bucket", req.f.bucket).
		Field("Key", req.f.key).
		Field("VersionID", req.f.versionID).
		Field("MFA", req.f.mfa).
		Field("BypassGovernanceRetention", req.f.bypassGovernanceRetention).
		Field("RequestPayer", req.f.requestPayer).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		Field("IfMatch", req.f.ifMatch).
		String()
}

// DeleteObjectResponse is the output of DeleteObject
type DeleteObjectResponse struct {
	f deleteObjectResponseFields
}

type deleteObjectResponseFields struct {
	deleteMarker   *bool
	versionID      *string
	requestCharged *RequestCharged
}

func (f deleteObjectResponseFields) clone() deleteObjectResponseFields {
	return deleteObjectResponseFields{
		deleteMarker:   model.ClonePtr(f.deleteMarker),
		versionID:      model.ClonePtr(f.versionID),
		requestCharged: model.ClonePtr(f.requestCharged),
	}
}

// DeleteObjectResponseBuilder stages the fields of a DeleteObjectResponse
type DeleteObjectResponseBuilder struct {
	f deleteObjectResponseFields
}

// NewDeleteObjectResponseBuilder returns a builder with every field absent
func NewDeleteObjectResponseBuilder() *DeleteObjectResponseBuilder {
	return &DeleteObjectResponseBuilder{}
}

// WithDeleteMarker sets DeleteMarker; nil clears it
func (b *DeleteObjectResponseBuilder) WithDeleteMarker(v *bool) *DeleteObjectResponseBuilder {
	b.f.deleteMarker = model.ClonePtr(v)
	return b
}

// WithVersionID sets VersionID; nil clears it
func (b *DeleteObjectResponseBuilder) WithVersionID(v *string) *DeleteObjectResponseBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithRequestCharged sets RequestCharged; nil clears it
func (b *DeleteObjectResponseBuilder) WithRequestCharged(v *RequestCharged) *DeleteObjectResponseBuilder {
	b.f.requestCharged = model.ClonePtr(v)
	return b
}

// Build returns an immutable DeleteObjectResponse holding a copy of the staged fields
func (b *DeleteObjectResponseBuilder) Build() *DeleteObjectResponse {
	return &DeleteObjectResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *DeleteObjectResponse) ToBuilder() *DeleteObjectResponseBuilder {
	return &DeleteObjectResponseBuilder{f: resp.f.clone()}
}

// DeleteMarker reports whether the version addressed is a delete marker
func (resp *DeleteObjectResponse) DeleteMarker() (bool, bool) {
	return model.Get(resp.f.deleteMarker)
}

// VersionID is the object version
func (resp *DeleteObjectResponse) VersionID() (string, bool) {
	return model.Get(resp.f.versionID)
}

// RequestCharged reports that the requester was charged
func (resp *DeleteObjectResponse) RequestCharged() (RequestCharged, bool) {
	return model.Get(resp.f.requestCharged)
}

// Equal reports whether resp and other hold the same field values
func (resp *DeleteObjectResponse) Equal(other *DeleteObjectResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualPtr(resp.f.deleteMarker, other.f.deleteMarker) &&
		model.EqualPtr(resp.f.versionID, other.f.versionID) &&
		model.EqualPtr(resp.f.requestCharged, other.f.requestCharged)
}

// Hash is consistent with Equal
func (resp *DeleteObjectResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("DeleteObjectResponse")
	h.Bool(resp.f.deleteMarker)
	h.String(resp.f.versionID)
	model.HashEnum(h, resp.f.requestCharged)
	return h.Sum64()
}

func (resp *DeleteObjectResponse) String() string {
	return model.NewPrinter("DeleteObjectResponse").
		Field("DeleteMarker", resp.f.deleteMarker).
		Field("VersionID", resp.f.versionID).
		Field("RequestCharged", resp.f.requestCharged).
		String()
}

// CopyObjectRequest is the input of CopyObject
type CopyObjectRequest struct {
	f copyObjectRequestFields
}

type copyObjectRequestFields struct {
	bucket                      *string
	key                         *string
	copySource                  *string
	copySourceIfMatch           *string
	copySourceIfNoneMatch       *string
	copySourceIfModifiedSince   *time.Time
	copySourceIfUnmodifiedSince *time.Time
	acl                         *ObjectCannedACL
	storageClass                *StorageClass
	metadataDirective           *MetadataDirective
	metadata                    map[string]string
	taggingDirective            *TaggingDirective
	tagging                     *string
	serverSideEncryption        *ServerSideEncryption
	sseKMSKeyID                 *string
	checksumAlgorithm           *ChecksumAlgorithm
	requestPayer                *RequestPayer
	expectedBucketOwner         *string
	expectedSourceBucketOwner   *string
}

func (f copyObjectRequestFields) clone() copyObjectRequestFields {
	return copyObjectRequestFields{
		bucket:                      model.ClonePtr(f.bucket),
		key:                         model.ClonePtr(f.key),
		copySource:                  model.ClonePtr(f.copySource),
		copySourceIfMatch:           model.ClonePtr(f.copySourceIfMatch),
		copySourceIfNoneMatch:       model.ClonePtr(f.copySourceIfNoneMatch),
		copySourceIfModifiedSince:   model.ClonePtr(f.copySourceIfModifiedSince),
		copySourceIfUnmodifiedSince: model.ClonePtr(f.copySourceIfUnmodifiedSince),
		acl:                         model.ClonePtr(f.acl),
		storageClass:                model.ClonePtr(f.storageClass),
		metadataDirective:           model.ClonePtr(f.metadataDirective),
		metadata:                    model.CloneMap(f.metadata),
		taggingDirective:            model.ClonePtr(f.taggingDirective),
		tagging:                     model.ClonePtr(f.tagging),
		serverSideEncryption:        model.ClonePtr(f.serverSideEncryption),
		sseKMSKeyID:                 model.ClonePtr(f.sseKMSKeyID),
		checksumAlgorithm:           model.ClonePtr(f.checksumAlgorithm),
		requestPayer:                model.ClonePtr(f.requestPayer),
		expectedBucketOwner:         model.ClonePtr(f.expectedBucketOwner),
		expectedSourceBucketOwner:   model.ClonePtr(f.expectedSourceBucketOwner),
	}
}

// CopyObjectRequestBuilder stages the fields of a CopyObjectRequest
type CopyObjectRequestBuilder struct {
	f copyObjectRequestFields
}

// NewCopyObjectRequestBuilder returns a builder with every field absent
func NewCopyObjectRequestBuilder() *CopyObjectRequestBuilder {
	return &CopyObjectRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *CopyObjectRequestBuilder) WithBucket(v *string) *CopyObjectRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithKey sets Key; nil clears it
func (b *CopyObjectRequestBuilder) WithKey(v *string) *CopyObjectRequestBuilder {
	b.f.key = model.ClonePtr(v)
	return b
}

// WithCopySource sets CopySource; nil clears it
func (b *CopyObjectRequestBuilder) WithCopySource(v *string) *CopyObjectRequestBuilder {
	b.f.copySource = model.ClonePtr(v)
	return b
}

// WithCopySourceIfMatch sets CopySourceIfMatch; nil clears it
func (b *CopyObjectRequestBuilder) WithCopySourceIfMatch(v *string) *CopyObjectRequestBuilder {
	b.f.copySourceIfMatch = model.ClonePtr(v)
	return b
}

// WithCopySourceIfNoneMatch sets CopySourceIfNoneMatch; nil clears it
func (b *CopyObjectRequestBuilder) WithCopySourceIfNoneMatch(v *string) *CopyObjectRequestBuilder {
	b.f.copySourceIfNoneMatch = model.ClonePtr(v)
	return b
}

// WithCopySourceIfModifiedSince sets CopySourceIfModifiedSince; nil clears it
func (b *CopyObjectRequestBuilder) WithCopySourceIfModifiedSince(v *time.Time) *CopyObjectRequestBuilder {
	b.f.copySourceIfModifiedSince = model.ClonePtr(v)
	return b
}

// WithCopySourceIfUnmodifiedSince sets CopySourceIfUnmodifiedSince; nil clears it
func (b *CopyObjectRequestBuilder) WithCopySourceIfUnmodifiedSince(v *time.Time) *CopyObjectRequestBuilder {
	b.f.copySourceIfUnmodifiedSince = model.ClonePtr(v)
	return b
}

// WithACL sets ACL; nil clears it
func (b *CopyObjectRequestBuilder) WithACL(v *ObjectCannedACL) *CopyObjectRequestBuilder {
	b.f.acl = model.ClonePtr(v)
	return b
}

// WithStorageClass sets StorageClass; nil clears it
func (b *CopyObjectRequestBuilder) WithStorageClass(v *StorageClass) *CopyObjectRequestBuilder {
	b.f.storageClass = model.ClonePtr(v)
	return b
}

// WithMetadataDirective sets MetadataDirective; nil clears it
func (b *CopyObjectRequestBuilder) WithMetadataDirective(v *MetadataDirective) *CopyObjectRequestBuilder {
	b.f.metadataDirective = model.ClonePtr(v)
	return b
}

// WithMetadata sets Metadata. nil leaves it absent.
func (b *CopyObjectRequestBuilder) WithMetadata(v map[string]string) *CopyObjectRequestBuilder {
	b.f.metadata = model.CloneMap(v)
	return b
}

// WithTaggingDirective sets TaggingDirective; nil clears it
func (b *CopyObjectRequestBuilder) WithTaggingDirective(v *TaggingDirective) *CopyObjectRequestBuilder {
	b.f.taggingDirective = model.ClonePtr(v)
	return b
}

// WithTagging sets Tagging; nil clears it
func (b *CopyObjectRequestBuilder) WithTagging(v *string) *CopyObjectRequestBuilder {
	b.f.tagging = model.ClonePtr(v)
	return b
}

// WithServerSideEncryption sets ServerSideEncryption; nil clears it
func (b *CopyObjectRequestBuilder) WithServerSideEncryption(v *ServerSideEncryption) *CopyObjectRequestBuilder {
	b.f.serverSideEncryption = model.ClonePtr(v)
	return b
}

// WithSSEKMSKeyID sets SSEKMSKeyID; nil clears it
func (b *CopyObjectRequestBuilder) WithSSEKMSKeyID(v *string) *CopyObjectRequestBuilder {
	b.f.sseKMSKeyID = model.ClonePtr(v)
	return b
}

// WithChecksumAlgorithm sets ChecksumAlgorithm; nil clears it
func (b *CopyObjectRequestBuilder) WithChecksumAlgorithm(v *ChecksumAlgorithm) *CopyObjectRequestBuilder {
	b.f.checksumAlgorithm = model.ClonePtr(v)
	return b
}

// WithRequestPayer sets RequestPayer; nil clears it
func (b *CopyObjectRequestBuilder) WithRequestPayer(v *RequestPayer) *CopyObjectRequestBuilder {
	b.f.requestPayer = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *CopyObjectRequestBuilder) WithExpectedBucketOwner(v *string) *CopyObjectRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// WithExpectedSourceBucketOwner sets ExpectedSourceBucketOwner; nil clears it
func (b *CopyObjectRequestBuilder) WithExpectedSourceBucketOwner(v *string) *CopyObjectRequestBuilder {
	b.f.expectedSourceBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable CopyObjectRequest holding a copy of the staged fields
func (b *CopyObjectRequestBuilder) Build() *CopyObjectRequest {
	return &CopyObjectRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *CopyObjectRequest) ToBuilder() *CopyObjectRequestBuilder {
	return &CopyObjectRequestBuilder{f: req.f.clone()}
}

func (req *CopyObjectRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

func (req *CopyObjectRequest) Key() (string, bool) {
	return model.Get(req.f.key)
}

// CopySource is the source bucket and key, URL encoded
func (req *CopyObjectRequest) CopySource() (string, bool) {
	return model.Get(req.f.copySource)
}

// CopySourceIfMatch copies only when the source ETag matches
func (req *CopyObjectRequest) CopySourceIfMatch() (string, bool) {
	return model.Get(req.f.copySourceIfMatch)
}

// CopySourceIfNoneMatch copies only when the source ETag differs
func (req *CopyObjectRequest) CopySourceIfNoneMatch() (string, bool) {
	return model.Get(req.f.copySourceIfNoneMatch)
}

// CopySourceIfModifiedSince copies only when the source changed after this time
func (req *CopyObjectRequest) CopySourceIfModifiedSince() (time.Time, bool) {
	return model.Get(req.f.copySourceIfModifiedSince)
}

// CopySourceIfUnmodifiedSince copies only when the source is unchanged since this time
func (req *CopyObjectRequest) CopySourceIfUnmodifiedSince() (time.Time, bool) {
	return model.Get(req.f.copySourceIfUnmodifiedSince)
}

// ACL is the canned ACL applied to the resource
func (req *CopyObjectRequest) ACL() (ObjectCannedACL, bool) {
	return model.Get(req.f.acl)
}

// StorageClass is the storage class
func (req *CopyObjectRequest) StorageClass() (StorageClass, bool) {
	return model.Get(req.f.storageClass)
}

// MetadataDirective says whether metadata is copied from the source or replaced
func (req *CopyObjectRequest) MetadataDirective() (MetadataDirective, bool) {
	return model.Get(req.f.metadataDirective)
}

// Metadata is the user metadata (x-amz-meta-*). The returned map is a copy
func (req *CopyObjectRequest) Metadata() (map[string]string, bool) {
	return model.CloneMap(req.f.metadata), req.f.metadata != nil
}

// TaggingDirective says whether tags are copied from the source or replaced
func (req *CopyObjectRequest) TaggingDirective() (TaggingDirective, bool) {
	return model.Get(req.f.taggingDirective)
}

// Tagging is the tag set encoded as URL query parameters
func (req *CopyObjectRequest) Tagging() (string, bool) {
	return model.Get(req.f.tagging)
}

// ServerSideEncryption is the server-side encryption algorithm
func (req *CopyObjectRequest) ServerSideEncryption() (ServerSideEncryption, bool) {
	return model.Get(req.f.serverSideEncryption)
}

// SSEKMSKeyID is the KMS key id used for encryption
func (req *CopyObjectRequest) SSEKMSKeyID() (string, bool) {
	return model.Get(req.f.sseKMSKeyID)
}

// ChecksumAlgorithm is the algorithm used to checksum the payload
func (req *CopyObjectRequest) ChecksumAlgorithm() (ChecksumAlgorithm, bool) {
	return model.Get(req.f.checksumAlgorithm)
}

// RequestPayer confirms the requester pays for a Requester Pays bucket
func (req *CopyObjectRequest) RequestPayer() (RequestPayer, bool) {
	return model.Get(req.f.requestPayer)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *CopyObjectRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// ExpectedSourceBucketOwner is the account id the source bucket must belong to
func (req *CopyObjectRequest) ExpectedSourceBucketOwner() (string, bool) {
	return model.Get(req.f.expectedSourceBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *CopyObjectRequest) Equal(other *CopyObjectRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.key, other.f.key) &&
		model.EqualPtr(req.f.copySource, other.f.copySource) &&
		model.EqualPtr(req.f.copySourceIfMatch, other.f.copySourceIfMatch) &&
		model.EqualPtr(req.f.copySourceIfNoneMatch, other.f.copySourceIfNoneMatch) &&
		model.EqualTime(req.f.copySourceIfModifiedSince, other.f.copySourceIfModifiedSince) &&
		model.EqualTime(req.f.copySourceIfUnmodifiedSince, other.f.copySourceIfUnmodifiedSince) &&
		model.EqualPtr(req.f.acl, other.f.acl) &&
		model.EqualPtr(req.f.storageClass, other.f.storageClass) &&
		model.EqualPtr(req.f.metadataDirective, other.f.metadataDirective) &&
		model.EqualMap(req.f.metadata, other.f.metadata) &&
		model.EqualPtr(req.f.taggingDirective, other.f.taggingDirective) &&
		model.EqualPtr(req.f.tagging, other.f.tagging) &&
		model.EqualPtr(req.f.serverSideEncryption, other.f.serverSideEncryption) &&
		model.EqualPtr(req.f.sseKMSKeyID, other.f.sseKMSKeyID) &&
		model.EqualPtr(req.f.checksumAlgorithm, other.f.checksumAlgorithm) &&
		model.EqualPtr(req.f.requestPayer, other.f.requestPayer) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner) &&
		model.EqualPtr(req.f.expectedSourceBucketOwner, other.f.expectedSourceBucketOwner)
}

// Hash is consistent with Equal
func (req *CopyObjectRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("CopyObjectRequest")
	h.String(req.f.bucket)
	h.String(req.f.key)
	h.String(req.f.copySource)
	h.String(req.f.copySourceIfMatch)
	h.String(req.f.copySourceIfNoneMatch)
	h.Time(req.f.copySourceIfModifiedSince)
	h.Time(req.f.copySourceIfUnmodifiedSince)
	model.HashEnum(h, req.f.acl)
	model.HashEnum(h, req.f.storageClass)
	model.HashEnum(h, req.f.metadataDirective)
	h.StringMap(req.f.metadata)
	model.HashEnum(h, req.f.taggingDirective)
	h.String(req.f.tagging)
	model.HashEnum(h, req.f.serverSideEncryption)
	h.String(req.f.sseKMSKeyID)
	model.HashEnum(h, req.f.checksumAlgorithm)
	model.HashEnum(h, req.f.requestPayer)
	h.String(req.f.expectedBucketOwner)
	h.String(req.f.expectedSourceBucketOwner)
	return h.Sum64()
}

func (req *CopyObjectRequest) String() string {
	return model.NewPrinter("CopyObjectRequest").
		Field("Bucket", req.f.bucket).
		Field("Key", req.f.key).
		Field("CopySource", req.f.copySource).
		Field("CopySourceIfMatch", req.f.copySourceIfMatch).
		Field("CopySourceIfNoneMatch", req.f.copySourceIfNoneMatch).
		Field("CopySourceIfModifiedSince", req.f.copySourceIfModifiedSince).
		Field("CopySourceIfUnmodifiedSince", req.f.copySourceIfUnmodifiedSince).
		Field("ACL", req.f.acl).
		Field("StorageClass", req.f.storageClass).
		Field("MetadataDirective", req.f.metadataDirective).
		Field("Metadata", req.f.metadata).
		Field("TaggingDirective", req.f.taggingDirective).
		Field("Tagging", req.f.tagging).
		Field("ServerSideEncryption", req.f.serverSideEncryption).
		Sensitive("SSEKMSKeyID", req.f.sseKMSKeyID).
		Field("ChecksumAlgorithm", req.f.checksumAlgorithm).
		Field("RequestPayer", req.f.requestPayer).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		Field("ExpectedSourceBucketOwner", req.f.expectedSourceBucketOwner).
		String()
}

// CopyObjectResponse is the output of CopyObject
type CopyObjectResponse struct {
	f copyObjectResponseFields
}

type copyObjectResponseFields struct {
	copyObjectResult     *CopyObjectResult
	versionID            *string
	copySourceVersionID  *string
	expiration           *string
	serverSideEncryption *ServerSideEncryption
	bucketKeyEnabled     *bool
	requestCharged       *RequestCharged
}

func (f copyObjectResponseFields) clone() copyObjectResponseFields {
	return copyObjectResponseFields{
		copyObjectResult:     f.copyObjectResult,
		versionID:            model.ClonePtr(f.versionID),
		copySourceVersionID:  model.ClonePtr(f.copySourceVersionID),
		expiration:           model.ClonePtr(f.expiration),
		serverSideEncryption: model.ClonePtr(f.serverSideEncryption),
		bucketKeyEnabled:     model.ClonePtr(f.bucketKeyEnabled),
		requestCharged:       model.ClonePtr(f.requestCharged),
	}
}

// CopyObjectResponseBuilder stages the fields of a CopyObjectResponse
type CopyObjectResponseBuilder struct {
	f copyObjectResponseFields
}

// NewCopyObjectResponseBuilder returns a builder with every field absent
func NewCopyObjectResponseBuilder() *CopyObjectResponseBuilder {
	return &CopyObjectResponseBuilder{}
}

// WithCopyObjectResult sets CopyObjectResult
func (b *CopyObjectResponseBuilder) WithCopyObjectResult(v *CopyObjectResult) *CopyObjectResponseBuilder {
	b.f.copyObjectResult = v
	return b
}

// WithVersionID sets VersionID; nil clears it
func (b *CopyObjectResponseBuilder) WithVersionID(v *string) *CopyObjectResponseBuilder {
	b.f.versionID = model.ClonePtr(v)
	return b
}

// WithCopySourceVersionID sets CopySourceVersionID; nil clears it
func (b *CopyObjectResponseBuilder) WithCopySourceVersionID(v *string) *CopyObjectResponseBuilder {
	b.f.copySourceVersionID = model.ClonePtr(v)
	return b
}

// WithExpiration sets Expiration; nil clears it
func (b *CopyObjectResponseBuilder) WithExpiration(v *string) *CopyObjectResponseBuilder {
	b.f.expiration = model.ClonePtr(v)
	return b
}

// WithServerSideEncryption sets ServerSideEncryption; nil clears it
func (b *CopyObjectResponseBuilder) WithServerSideEncryption(v *ServerSideEncryption) *CopyObjectResponseBuilder {
	b.f.serverSideEncryption = model.ClonePtr(v)
	return b
}

// WithBucketKeyEnabled sets BucketKeyEnabled; nil clears it
func (b *CopyObjectResponseBuilder) WithBucketKeyEnabled(v *bool) *CopyObjectResponseBuilder {
	b.f.bucketKeyEnabled = model.ClonePtr(v)
	return b
}

// WithRequestCharged sets RequestCharged; nil clears it
func (b *CopyObjectResponseBuilder) WithRequestCharged(v *RequestCharged) *CopyObjectResponseBuilder {
	b.f.requestCharged = model.ClonePtr(v)
	return b
}

// Build returns an immutable CopyObjectResponse holding a copy of the staged fields
func (b *CopyObjectResponseBuilder) Build() *CopyObjectResponse {
	return &CopyObjectResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *CopyObjectResponse) ToBuilder() *CopyObjectResponseBuilder {
	return &CopyObjectResponseBuilder{f: resp.f.clone()}
}

// CopyObjectResult holds the ETag and modification time of the new object
func (resp *CopyObjectResponse) CopyObjectResult() (*CopyObjectResult, bool) {
	return resp.f.copyObjectResult, resp.f.copyObjectResult != nil
}

// VersionID is the object version
func (resp *CopyObjectResponse) VersionID() (string, bool) {
	return model.Get(resp.f.versionID)
}

// CopySourceVersionID is the version of the source that was copied
func (resp *CopyObjectResponse) CopySourceVersionID() (string, bool) {
	return model.Get(resp.f.copySourceVersionID)
}

// Expiration is the x-amz-expiration header describing lifecycle expiry
func (resp *CopyObjectResponse) Expiration() (string, bool) {
	return model.Get(resp.f.expiration)
}

// ServerSideEncryption is the server-side encryption algorithm
func (resp *CopyObjectResponse) ServerSideEncryption() (ServerSideEncryption, bool) {
	return model.Get(resp.f.serverSideEncryption)
}

// BucketKeyEnabled reports whether SSE-KMS used an S3 Bucket Key
func (resp *CopyObjectResponse) BucketKeyEnabled() (bool, bool) {
	return model.Get(resp.f.bucketKeyEnabled)
}

// RequestCharged reports that the requester was charged
func (resp *CopyObjectResponse) RequestCharged() (RequestCharged, bool) {
	return model.Get(resp.f.requestCharged)
}

// Equal reports whether resp and other hold the same field values
func (resp *CopyObjectResponse) Equal(other *CopyObjectResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return resp.f.copyObjectResult.Equal(other.f.copyObjectResult) &&
		model.EqualPtr(resp.f.versionID, other.f.versionID) &&
		model.EqualPtr(resp.f.copySourceVersionID, other.f.copySourceVersionID) &&
		model.EqualPtr(resp.f.expiration, other.f.expiration) &&
		model.EqualPtr(resp.f.serverSideEncryption, other.f.serverSideEncryption) &&
		model.EqualPtr(resp.f.bucketKeyEnabled, other.f.bucketKeyEnabled) &&
		model.EqualPtr(resp.f.requestCharged, other.f.requestCharged)
}

// Hash is consistent with Equal
func (resp *CopyObjectResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("CopyObjectResponse")
	h.Value(resp.f.copyObjectResult)
	h.String(resp.f.versionID)
	h.String(resp.f.copySourceVersionID)
	h.String(resp.f.expiration)
	model.HashEnum(h, resp.f.serverSideEncryption)
	h.Bool(resp.f.bucketKeyEnabled)
	model.HashEnum(h, resp.f.requestCharged)
	return h.Sum64()
}

func (resp *CopyObjectResponse) String() string {
	return model.NewPrinter("CopyObjectResponse").
		Field("CopyObjectResult", resp.f.copyObjectResult).
		Field("VersionID", resp.f.versionID).
		Field("CopySourceVersionID", resp.f.copySourceVersionID).
		Field("Expiration", resp.f.expiration).
		Field("ServerSideEncryption", resp.f.serverSideEncryption).
		Field("BucketKeyEnabled", resp.f.bucketKeyEnabled).
		Field("RequestCharged", resp.f.requestCharged).
		String()
}

// ListObjectsV2Request is the input of ListObjectsV2
type ListObjectsV2Request struct {
	f listObjectsV2RequestFields
}

type listObjectsV2RequestFields struct {
	bucket              *string
	delimiter           *string
	encodingType        *EncodingType
	maxKeys             *int32
	prefix              *string
	continuationToken   *string
	fetchOwner          *bool
	startAfter          *string
	requestPayer        *RequestPayer
	expectedBucketOwner *string
}

func (f listObjectsV2RequestFields) clone() listObjectsV2RequestFields {
	return listObjectsV2RequestFields{
		bucket:              model.ClonePtr(f.bucket),
		delimiter:           model.ClonePtr(f.delimiter),
		encodingType:        model.ClonePtr(f.encodingType),
		maxKeys:             model.ClonePtr(f.maxKeys),
		prefix:              model.ClonePtr(f.prefix),
		continuationToken:   model.ClonePtr(f.continuationToken),
		fetchOwner:          model.ClonePtr(f.fetchOwner),
		startAfter:          model.ClonePtr(f.startAfter),
		requestPayer:        model.ClonePtr(f.requestPayer),
		expectedBucketOwner: model.ClonePtr(f.expectedBucketOwner),
	}
}

// ListObjectsV2RequestBuilder stages the fields of a ListObjectsV2Request
type ListObjectsV2RequestBuilder struct {
	f listObjectsV2RequestFields
}

// NewListObjectsV2RequestBuilder returns a builder with every field absent
func NewListObjectsV2RequestBuilder() *ListObjectsV2RequestBuilder {
	return &ListObjectsV2RequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *ListObjectsV2RequestBuilder) WithBucket(v *string) *ListObjectsV2RequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithDelimiter sets Delimiter; nil clears it
func (b *ListObjectsV2RequestBuilder) WithDelimiter(v *string) *ListObjectsV2RequestBuilder {
	b.f.delimiter = model.ClonePtr(v)
	return b
}

// WithEncodingType sets EncodingType; nil clears it
func (b *ListObjectsV2RequestBuilder) WithEncodingType(v *EncodingType) *ListObjectsV2RequestBuilder {
	b.f.encodingType = model.ClonePtr(v)
	return b
}

// WithMaxKeys sets MaxKeys; nil clears it
func (b *ListObjectsV2RequestBuilder) WithMaxKeys(v *int32) *ListObjectsV2RequestBuilder {
	b.f.maxKeys = model.ClonePtr(v)
	return b
}

// WithPrefix sets Prefix; nil clears it
func (b *ListObjectsV2RequestBuilder) WithPrefix(v *string) *ListObjectsV2RequestBuilder {
	b.f.prefix = model.ClonePtr(v)
	return b
}

// WithContinuationToken sets ContinuationToken; nil clears it
func (b *ListObjectsV2RequestBuilder) WithContinuationToken(v *string) *ListObjectsV2RequestBuilder {
	b.f.continuationToken = model.ClonePtr(v)
	return b
}

// WithFetchOwner sets FetchOwner; nil clears it
func (b *ListObjectsV2RequestBuilder) WithFetchOwner(v *bool) *ListObjectsV2RequestBuilder {
	b.f.fetchOwner = model.ClonePtr(v)
	return b
}

// WithStartAfter sets StartAfter; nil clears it
func (b *ListObjectsV2RequestBuilder) WithStartAfter(v *string) *ListObjectsV2RequestBuilder {
	b.f.startAfter = model.ClonePtr(v)
	return b
}

// WithRequestPayer sets RequestPayer; nil clears it
func (b *ListObjectsV2RequestBuilder) WithRequestPayer(v *RequestPayer) *ListObjectsV2RequestBuilder {
	b.f.requestPayer = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *ListObjectsV2RequestBuilder) WithExpectedBucketOwner(v *string) *ListObjectsV2RequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable ListObjectsV2Request holding a copy of the staged fields
func (b *ListObjectsV2RequestBuilder) Build() *ListObjectsV2Request {
	return &ListObjectsV2Request{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *ListObjectsV2Request) ToBuilder() *ListObjectsV2RequestBuilder {
	return &ListObjectsV2RequestBuilder{f: req.f.clone()}
}

func (req *ListObjectsV2Request) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

// Delimiter groups keys sharing a prefix up to this character
func (req *ListObjectsV2Request) Delimiter() (string, bool) {
	return model.Get(req.f.delimiter)
}

// EncodingType asks the service to URL-encode keys in the response
func (req *ListObjectsV2Request) EncodingType() (EncodingType, bool) {
	return model.Get(req.f.encodingType)
}

// MaxKeys caps the number of keys returned
func (req *ListObjectsV2Request) MaxKeys() (int32, bool) {
	return model.Get(req.f.maxKeys)
}

// Prefix limits results to keys beginning with this string
func (req *ListObjectsV2Request) Prefix() (string, bool) {
	return model.Get(req.f.prefix)
}

// ContinuationToken is the opaque token from a previous truncated page
func (req *ListObjectsV2Request) ContinuationToken() (string, bool) {
	return model.Get(req.f.continuationToken)
}

// FetchOwner asks for the owner of each object in the listing
func (req *ListObjectsV2Request) FetchOwner() (bool, bool) {
	return model.Get(req.f.fetchOwner)
}

// StartAfter begins the listing after this key
func (req *ListObjectsV2Request) StartAfter() (string, bool) {
	return model.Get(req.f.startAfter)
}

// RequestPayer confirms the requester pays for a Requester Pays bucket
func (req *ListObjectsV2Request) RequestPayer() (RequestPayer, bool) {
	return model.Get(req.f.requestPayer)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *ListObjectsV2Request) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *ListObjectsV2Request) Equal(other *ListObjectsV2Request) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.delimiter, other.f.delimiter) &&
		model.EqualPtr(req.f.encodingType, other.f.encodingType) &&
		model.EqualPtr(req.f.maxKeys, other.f.maxKeys) &&
		model.EqualPtr(req.f.prefix, other.f.prefix) &&
		model.EqualPtr(req.f.continuationToken, other.f.continuationToken) &&
		model.EqualPtr(req.f.fetchOwner, other.f.fetchOwner) &&
		model.EqualPtr(req.f.startAfter, other.f.startAfter) &&
		model.EqualPtr(req.f.requestPayer, other.f.requestPayer) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *ListObjectsV2Request) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("ListObjectsV2Request")
	h.String(req.f.bucket)
	h.String(req.f.delimiter)
	model.HashEnum(h, req.f.encodingType)
	h.Int32(req.f.maxKeys)
	h.String(req.f.prefix)
	h.String(req.f.continuationToken)
	h.Bool(req.f.fetchOwner)
	h.String(req.f.startAfter)
	model.HashEnum(h, req.f.requestPayer)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *ListObjectsV2Request) String() string {
	return model.NewPrinter("ListObjectsV2Request").
		Field("Bucket", req.f.bucket).
		Field("Delimiter", req.f.delimiter).
		Field("EncodingType", req.f.encodingType).
		Field("MaxKeys", req.f.maxKeys).
		Field("Prefix", req.f.prefix).
		Field("ContinuationToken", req.f.continuationToken).
		Field("FetchOwner", req.f.fetchOwner).
		Field("StartAfter", req.f.startAfter).
		Field("RequestPayer", req.f.requestPayer).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// ListObjectsV2Response is the output of ListObjectsV2
type ListObjectsV2Response struct {
	f listObjectsV2ResponseFields
}

type listObjectsV2ResponseFields struct {
	isTruncated           *bool
	contents              []*Object
	name                  *string
	prefix                *string
	delimiter             *string
	maxKeys               *int32
	commonPrefixes        []*CommonPrefix
	encodingType          *EncodingType
	keyCount              *int32
	continuationToken     *string
	nextContinuationToken *string
	startAfter            *string
	requestCharged        *RequestCharged
}

func (f listObjectsV2ResponseFields) clone() listObjectsV2ResponseFields {
	return listObjectsV2ResponseFields{
		isTruncated:           model.ClonePtr(f.isTruncated),
		contents:              model.CloneSlice(f.contents),
		name:                  model.ClonePtr(f.name),
		prefix:                model.ClonePtr(f.prefix),
		delimiter:             model.ClonePtr(f.delimiter),
		maxKeys:               model.ClonePtr(f.maxKeys),
		commonPrefixes:        model.CloneSlice(f.commonPrefixes),
		encodingType:          model.ClonePtr(f.encodingType),
		keyCount:              model.ClonePtr(f.keyCount),
		continuationToken:     model.ClonePtr(f.continuationToken),
		nextContinuationToken: model.ClonePtr(f.nextContinuationToken),
		startAfter:            model.ClonePtr(f.startAfter),
		requestCharged:        model.ClonePtr(f.requestCharged),
	}
}

// ListObjectsV2ResponseBuilder stages the fields of a ListObjectsV2Response
type ListObjectsV2ResponseBuilder struct {
	f listObjectsV2ResponseFields
}

// NewListObjectsV2ResponseBuilder returns a builder with every field absent
func NewListObjectsV2ResponseBuilder() *ListObjectsV2ResponseBuilder {
	return &ListObjectsV2ResponseBuilder{}
}

// WithIsTruncated sets IsTruncated; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithIsTruncated(v *bool) *ListObjectsV2ResponseBuilder {
	b.f.isTruncated = model.ClonePtr(v)
	return b
}

// WithContents sets Contents. nil leaves it absent; an empty slice is present and empty.
func (b *ListObjectsV2ResponseBuilder) WithContents(v []*Object) *ListObjectsV2ResponseBuilder {
	b.f.contents = model.CloneSlice(v)
	return b
}

// WithName sets Name; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithName(v *string) *ListObjectsV2ResponseBuilder {
	b.f.name = model.ClonePtr(v)
	return b
}

// WithPrefix sets Prefix; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithPrefix(v *string) *ListObjectsV2ResponseBuilder {
	b.f.prefix = model.ClonePtr(v)
	return b
}

// WithDelimiter sets Delimiter; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithDelimiter(v *string) *ListObjectsV2ResponseBuilder {
	b.f.delimiter = model.ClonePtr(v)
	return b
}

// WithMaxKeys sets MaxKeys; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithMaxKeys(v *int32) *ListObjectsV2ResponseBuilder {
	b.f.maxKeys = model.ClonePtr(v)
	return b
}

// WithCommonPrefixes sets CommonPrefixes. nil leaves it absent; an empty slice is present and empty.
func (b *ListObjectsV2ResponseBuilder) WithCommonPrefixes(v []*CommonPrefix) *ListObjectsV2ResponseBuilder {
	b.f.commonPrefixes = model.CloneSlice(v)
	return b
}

// WithEncodingType sets EncodingType; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithEncodingType(v *EncodingType) *ListObjectsV2ResponseBuilder {
	b.f.encodingType = model.ClonePtr(v)
	return b
}

// WithKeyCount sets KeyCount; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithKeyCount(v *int32) *ListObjectsV2ResponseBuilder {
	b.f.keyCount = model.ClonePtr(v)
	return b
}

// WithContinuationToken sets ContinuationToken; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithContinuationToken(v *string) *ListObjectsV2ResponseBuilder {
	b.f.continuationToken = model.ClonePtr(v)
	return b
}

// WithNextContinuationToken sets NextContinuationToken; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithNextContinuationToken(v *string) *ListObjectsV2ResponseBuilder {
	b.f.nextContinuationToken = model.ClonePtr(v)
	return b
}

// WithStartAfter sets StartAfter; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithStartAfter(v *string) *ListObjectsV2ResponseBuilder {
	b.f.startAfter = model.ClonePtr(v)
	return b
}

// WithRequestCharged sets RequestCharged; nil clears it
func (b *ListObjectsV2ResponseBuilder) WithRequestCharged(v *RequestCharged) *ListObjectsV2ResponseBuilder {
	b.f.requestCharged = model.ClonePtr(v)
	return b
}

// Build returns an immutable ListObjectsV2Response holding a copy of the staged fields
func (b *ListObjectsV2ResponseBuilder) Build() *ListObjectsV2Response {
	return &ListObjectsV2Response{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *ListObjectsV2Response) ToBuilder() *ListObjectsV2ResponseBuilder {
	return &ListObjectsV2ResponseBuilder{f: resp.f.clone()}
}

// IsTruncated reports whether more results follow this page
func (resp *ListObjectsV2Response) IsTruncated() (bool, bool) {
	return model.Get(resp.f.isTruncated)
}

// Contents is the page of objects
func (resp *ListObjectsV2Response) Contents() ([]*Object, bool) {
	return model.CloneSlice(resp.f.contents), resp.f.contents != nil
}

func (resp *ListObjectsV2Response) Name() (string, bool) {
	return model.Get(resp.f.name)
}

// Prefix limits results to keys beginning with this string
func (resp *ListObjectsV2Response) Prefix() (string, bool) {
	return model.Get(resp.f.prefix)
}

// Delimiter groups keys sharing a prefix up to this character
func (resp *ListObjectsV2Response) Delimiter() (string, bool) {
	return model.Get(resp.f.delimiter)
}

// MaxKeys caps the number of keys returned
func (resp *ListObjectsV2Response) MaxKeys() (int32, bool) {
	return model.Get(resp.f.maxKeys)
}

// CommonPrefixes is the set of prefixes rolled up by Delimiter
func (resp *ListObjectsV2Response) CommonPrefixes() ([]*CommonPrefix, bool) {
	return model.CloneSlice(resp.f.commonPrefixes), resp.f.commonPrefixes != nil
}

// EncodingType asks the service to URL-encode keys in the response
func (resp *ListObjectsV2Response) EncodingType() (EncodingType, bool) {
	return model.Get(resp.f.encodingType)
}

// KeyCount is the number of keys returned in this page
func (resp *ListObjectsV2Response) KeyCount() (int32, bool) {
	return model.Get(resp.f.keyCount)
}

// ContinuationToken is the opaque token from a previous truncated page
func (resp *ListObjectsV2Response) ContinuationToken() (string, bool) {
	return model.Get(resp.f.continuationToken)
}

// NextContinuationToken is set when IsTruncated is true
func (resp *ListObjectsV2Response) NextContinuationToken() (string, bool) {
	return model.Get(resp.f.nextContinuationToken)
}

// StartAfter begins the listing after this key
func (resp *ListObjectsV2Response) StartAfter() (string, bool) {
	return model.Get(resp.f.startAfter)
}

// RequestCharged reports that the requester was charged
func (resp *ListObjectsV2Response) RequestCharged() (RequestCharged, bool) {
	return model.Get(resp.f.requestCharged)
}

// Equal reports whether resp and other hold the same field values
func (resp *ListObjectsV2Response) Equal(other *ListObjectsV2Response) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualPtr(resp.f.isTruncated, other.f.isTruncated) &&
		model.EqualValues(resp.f.contents, other.f.contents) &&
		model.EqualPtr(resp.f.name, other.f.name) &&
		model.EqualPtr(resp.f.prefix, other.f.prefix) &&
		model.EqualPtr(resp.f.delimiter, other.f.delimiter) &&
		model.EqualPtr(resp.f.maxKeys, other.f.maxKeys) &&
		model.EqualValues(resp.f.commonPrefixes, other.f.commonPrefixes) &&
		model.EqualPtr(resp.f.encodingType, other.f.encodingType) &&
		model.EqualPtr(resp.f.keyCount, other.f.keyCount) &&
		model.EqualPtr(resp.f.continuationToken, other.f.continuationToken) &&
		model.EqualPtr(resp.f.nextContinuationToken, other.f.nextContinuationToken) &&
		model.EqualPtr(resp.f.startAfter, other.f.startAfter) &&
		model.EqualPtr(resp.f.requestCharged, other.f.requestCharged)
}

// Hash is consistent with Equal
func (resp *ListObjectsV2Response) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("ListObjectsV2Response")
	h.Bool(resp.f.isTruncated)
	model.HashValues(h, resp.f.contents)
	h.String(resp.f.name)
	h.String(resp.f.prefix)
	h.String(resp.f.delimiter)
	h.Int32(resp.f.maxKeys)
	model.HashValues(h, resp.f.commonPrefixes)
	model.HashEnum(h, resp.f.encodingType)
	h.Int32(resp.f.keyCount)
	h.String(resp.f.continuationToken)
	h.String(resp.f.nextContinuationToken)
	h.String(resp.f.startAfter)
	model.HashEnum(h, resp.f.requestCharged)
	return h.Sum64()
}

func (resp *ListObjectsV2Response) String() string {
	return model.NewPrinter("ListObjectsV2Response").
		Field("IsTruncated", resp.f.isTruncated).
		Field("Contents", resp.f.contents).
		Field("Name", resp.f.name).
		Field("Prefix", resp.f.prefix).
		Field("Delimiter", resp.f.delimiter).
		Field("MaxKeys", resp.f.maxKeys).
		Field("CommonPrefixes", resp.f.commonPrefixes).
		Field("EncodingType", resp.f.encodingType).
		Field("KeyCount", resp.f.keyCount).
		Field("ContinuationToken", resp.f.continuationToken).
		Field("NextContinuationToken", resp.f.nextContinuationToken).
		Field("StartAfter", resp.f.startAfter).
		Field("RequestCharged", resp.f.requestCharged).
		String()
}
